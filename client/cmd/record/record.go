package record

import (
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/client/cmd/internal/logger"
	"github.com/odpf/shelflife/config"
)

// loadConfig reads the client config and the logger built from it, output goes to the command's writer
func loadConfig(cmd *cobra.Command, configFilePath string) (*config.ClientConfig, log.Logger, error) {
	conf, err := internal.LoadConfig(configFilePath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return conf, logger.NewClientLoggerWithWriter(conf.Log, cmd.OutOrStdout()), nil
}
