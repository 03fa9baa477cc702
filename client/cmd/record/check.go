package record

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/hashicorp/go-multierror"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/client/cmd/internal/survey"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/core/shelflife/service"
)

type checkCommand struct {
	logger         log.Logger
	configFilePath string
	clientConfig   *config.ClientConfig

	answer string
}

// NewCheckCommand initializes command to look up namespaces and offer to track the missing ones
func NewCheckCommand() *cobra.Command {
	check := &checkCommand{}
	cmd := &cobra.Command{
		Use:     "check <namespace>...",
		Aliases: []string{"k"},
		Short:   "Queries the cluster for namespaces and offers to add the untracked ones",
		Example: heredoc.Doc(`
			$ shelflife check team-x
			$ shelflife check team-x team-y --collection whitelist --answer n
		`),
		Args:     cobra.MinimumNArgs(1),
		PreRunE:  check.PreRunE,
		RunE:     check.RunE,
		PostRunE: check.PostRunE,
	}
	check.injectFlags(cmd)
	return cmd
}

func (c *checkCommand) injectFlags(cmd *cobra.Command) {
	internal.InjectConfigFlags(cmd.Flags(), &c.configFilePath)
	internal.InjectClusterFlags(cmd.Flags())
	cmd.Flags().StringVar(&c.answer, "answer", "", "Answer every confirmation with y or n instead of prompting")
}

func (c *checkCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	conf, l, err := loadConfig(cmd, c.configFilePath)
	if err != nil {
		return err
	}
	if err := config.ValidateCluster(conf.Cluster); err != nil {
		return fmt.Errorf("cluster is not configured, set --host/--token or ENDPOINT/OKD_TOKEN: %w", err)
	}
	c.clientConfig = conf
	c.logger = l
	return nil
}

func (c *checkCommand) RunE(cmd *cobra.Command, namespaces []string) error {
	collection, err := shelflife.CollectionFrom(c.clientConfig.Collection)
	if err != nil {
		return err
	}
	repo, cleanup, err := internal.NewRecordRepository(c.clientConfig.Store, c.logger)
	if err != nil {
		return err
	}
	defer cleanup()

	aggregator := service.NewActivityAggregator(internal.NewClusterClient(c.clientConfig.Cluster), c.logger)
	reconcileService := service.NewReconcileService(
		internal.NewSpinningAggregator(aggregator),
		repo,
		survey.NewConfirmer(c.answer, c.logger),
		c.logger,
	)

	var result error
	for _, namespace := range namespaces {
		if _, err := reconcileService.Reconcile(cmd.Context(), collection, namespace,
			c.clientConfig.Cluster.Token, c.clientConfig.Cluster.Host); err != nil {
			result = multierror.Append(result, fmt.Errorf("namespace [%s]: %w", namespace, err))
		}
	}
	return result
}

func (c *checkCommand) PostRunE(_ *cobra.Command, _ []string) error {
	internal.PushMetrics(c.clientConfig.Telemetry, c.logger)
	return nil
}
