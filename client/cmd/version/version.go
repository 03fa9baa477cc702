package version

import (
	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal/logger"
	"github.com/odpf/shelflife/config"
)

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "shelflife version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := logger.NewClientLoggerWithWriter(config.LogConfig{}, cmd.OutOrStdout())
			l.Info("Client: %s-%s", config.BuildVersion, config.BuildCommit)
			if config.BuildDate != "" {
				l.Info("Built: %s", config.BuildDate)
			}
			return nil
		},
	}
}
