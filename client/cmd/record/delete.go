package record

import (
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/core/shelflife/service"
)

type deleteCommand struct {
	logger         log.Logger
	configFilePath string
	clientConfig   *config.ClientConfig
}

// NewDeleteCommand initializes command to remove a namespace from a collection
func NewDeleteCommand() *cobra.Command {
	del := &deleteCommand{}
	cmd := &cobra.Command{
		Use:      "delete <namespace>",
		Aliases:  []string{"d"},
		Short:    "Removes a namespace from the collection without asking",
		Example:  "shelflife delete team-x [--collection whitelist]",
		Args:     cobra.ExactArgs(1),
		PreRunE:  del.PreRunE,
		RunE:     del.RunE,
		PostRunE: del.PostRunE,
	}
	internal.InjectConfigFlags(cmd.Flags(), &del.configFilePath)
	return cmd
}

func (d *deleteCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	conf, l, err := loadConfig(cmd, d.configFilePath)
	if err != nil {
		return err
	}
	d.clientConfig = conf
	d.logger = l
	return nil
}

func (d *deleteCommand) RunE(cmd *cobra.Command, args []string) error {
	collection, err := shelflife.CollectionFrom(d.clientConfig.Collection)
	if err != nil {
		return err
	}
	repo, cleanup, err := internal.NewRecordRepository(d.clientConfig.Store, d.logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return service.NewReconcileService(nil, repo, nil, d.logger).Delete(cmd.Context(), collection, args[0])
}

func (d *deleteCommand) PostRunE(_ *cobra.Command, _ []string) error {
	internal.PushMetrics(d.clientConfig.Telemetry, d.logger)
	return nil
}
