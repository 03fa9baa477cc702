package record

import (
	"bytes"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/core/shelflife/service"
)

type viewCommand struct {
	logger         log.Logger
	configFilePath string
	clientConfig   *config.ClientConfig
}

// NewViewCommand initializes command to list the records of a collection
func NewViewCommand() *cobra.Command {
	view := &viewCommand{}
	cmd := &cobra.Command{
		Use:      "view",
		Aliases:  []string{"v"},
		Short:    "Lists every namespace tracked in the collection",
		Example:  "shelflife view [--collection whitelist]",
		Args:     cobra.NoArgs,
		PreRunE:  view.PreRunE,
		RunE:     view.RunE,
		PostRunE: view.PostRunE,
	}
	internal.InjectConfigFlags(cmd.Flags(), &view.configFilePath)
	return cmd
}

func (v *viewCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	conf, l, err := loadConfig(cmd, v.configFilePath)
	if err != nil {
		return err
	}
	v.clientConfig = conf
	v.logger = l
	return nil
}

func (v *viewCommand) RunE(cmd *cobra.Command, _ []string) error {
	collection, err := shelflife.CollectionFrom(v.clientConfig.Collection)
	if err != nil {
		return err
	}
	repo, cleanup, err := internal.NewRecordRepository(v.clientConfig.Store, v.logger)
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := service.NewReconcileService(nil, repo, nil, v.logger).List(cmd.Context(), collection)
	if err != nil {
		return err
	}
	v.logger.Info("%s", collection.Heading())
	v.logger.Info("%s", stringifyRecords(records))
	return nil
}

func (v *viewCommand) PostRunE(_ *cobra.Command, _ []string) error {
	internal.PushMetrics(v.clientConfig.Telemetry, v.logger)
	return nil
}

func stringifyRecords(records []*shelflife.NamespaceRecord) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Namespace", "Admins", "Latest Update", "Cause"})
	for _, record := range records {
		table.Append([]string{
			record.Name,
			strings.Join(record.Admins, ", "),
			record.LastUpdate,
			record.Cause,
		})
	}
	table.Render()
	return buff.String()
}
