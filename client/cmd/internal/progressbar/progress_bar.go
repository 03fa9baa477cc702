package progressbar

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

const progressBarRefreshDuration = 120 * time.Millisecond

// ProgressBar defines custom progress bar
type ProgressBar struct {
	spinner *spinner.Spinner

	mu     sync.Mutex
	writer io.Writer
}

// NewProgressBar initializes default progress bar, it only draws on a terminal stderr
func NewProgressBar() *ProgressBar {
	writer := io.Discard
	disableProgressIndicator := strings.ToLower(os.Getenv("SHELFLIFE_PROGRESS_INDICATOR"))
	if isatty.IsTerminal(os.Stderr.Fd()) && disableProgressIndicator != "false" {
		writer = os.Stderr
	}
	return NewProgressBarWithWriter(writer)
}

// NewProgressBarWithWriter initializes progress bar with writer
func NewProgressBarWithWriter(w io.Writer) *ProgressBar {
	return &ProgressBar{
		writer: w,
	}
}

// Start starts the progress bar with label
func (p *ProgressBar) Start(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.spinner != nil {
		if label == "" {
			p.spinner.Suffix = ""
		} else {
			p.spinner.Suffix = " " + label
		}
		return
	}
	sp := spinner.New(spinner.CharSets[11], progressBarRefreshDuration,
		spinner.WithWriter(p.writer), spinner.WithColor("fgCyan"))
	if label != "" {
		sp.Suffix = " " + label
	}
	sp.Start()
	p.spinner = sp
}

// Stop stops progress bar
func (p *ProgressBar) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		p.spinner.Stop()
	}
	p.spinner = nil
}
