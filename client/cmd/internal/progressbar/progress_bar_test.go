package progressbar_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/shelflife/client/cmd/internal/progressbar"
)

func TestProgressBar(t *testing.T) {
	t.Run("can be restarted after stop", func(t *testing.T) {
		bar := progressbar.NewProgressBarWithWriter(io.Discard)

		assert.NotPanics(t, func() {
			bar.Start("querying cluster...")
			bar.Start("")
			bar.Stop()
			bar.Stop()
			bar.Start("querying cluster...")
			bar.Stop()
		})
	})
}
