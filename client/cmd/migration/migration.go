package migration

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/client/cmd/internal/logger"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/internal/store/postgres"
	"github.com/odpf/shelflife/internal/store/sqlite"
)

type migrateCommand struct {
	configFilePath string
}

// NewMigrateCommand initializes command to create or upgrade the store schema
func NewMigrateCommand() *cobra.Command {
	migrate := &migrateCommand{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Command to apply the store migrations",
		Args:  cobra.NoArgs,
		RunE:  migrate.RunE,
	}
	cmd.Flags().StringVarP(&migrate.configFilePath, "config", "c", migrate.configFilePath, "File path for client configuration")
	cmd.AddCommand(NewRollbackCommand())
	return cmd
}

func (m *migrateCommand) RunE(cmd *cobra.Command, _ []string) error {
	clientConfig, err := internal.LoadConfig(m.configFilePath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}
	l := logger.NewClientLoggerWithWriter(clientConfig.Log, cmd.OutOrStdout())
	dsn := clientConfig.Store.ConnectionURL()

	l.Info("initiating migration for %s store", clientConfig.Store.Driver)
	if clientConfig.Store.Driver == config.StoreDriverSQLite {
		db, err := sqlite.Connect(dsn)
		if err != nil {
			return fmt.Errorf("error migrating sqlite store: %w", err)
		}
		defer db.Close()
	} else if err := postgres.Migrate(l, dsn); err != nil {
		return fmt.Errorf("error migrating postgres store: %w", err)
	}
	l.Info("migration finished successfully")
	return nil
}

type rollbackCommand struct {
	configFilePath string
	count          int
}

// NewRollbackCommand initializes command for migration rollback
func NewRollbackCommand() *cobra.Command {
	rollback := &rollbackCommand{count: 1}
	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Command to rollback the current active migration",
		Args:  cobra.NoArgs,
		RunE:  rollback.RunE,
	}
	cmd.Flags().StringVarP(&rollback.configFilePath, "config", "c", rollback.configFilePath, "File path for client configuration")
	cmd.Flags().IntVar(&rollback.count, "count", rollback.count, "Number of migrations to roll back")
	return cmd
}

func (r *rollbackCommand) RunE(cmd *cobra.Command, _ []string) error {
	clientConfig, err := internal.LoadConfig(r.configFilePath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}
	if clientConfig.Store.Driver != config.StoreDriverPostgres {
		return fmt.Errorf("rollback is only supported for the %s store", config.StoreDriverPostgres)
	}

	l := logger.NewClientLoggerWithWriter(clientConfig.Log, cmd.OutOrStdout())
	l.Info("executing rollback")
	if err := postgres.Rollback(l, clientConfig.Store.ConnectionURL(), r.count); err != nil {
		return fmt.Errorf("error rolling back migration: %w", err)
	}
	l.Info("rollback finished successfully")
	return nil
}
