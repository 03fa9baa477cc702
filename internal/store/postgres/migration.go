package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // required for postgres migrate driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/odpf/salt/log"
)

//go:embed migrations
var migrationFs embed.FS

const (
	resourcePath = "migrations"
)

func NewMigrator(dbConnURL string) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationFs, resourcePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing source driver: %w", err)
	}

	return migrate.NewWithSourceInstance("iofs", sourceDriver, dbConnURL)
}

// Migrate to run up migrations
func Migrate(logger log.Logger, connURL string) error {
	m, err := NewMigrator(connURL)
	if err != nil {
		return fmt.Errorf("db migrator: %w", err)
	}
	defer closeMigrator(logger, m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migration to apply")
			return nil
		}
		return fmt.Errorf("db migrator: %w", err)
	}
	return nil
}

// Rollback reverts the last count migrations
func Rollback(logger log.Logger, connURL string, count int) error {
	if count < 1 {
		return fmt.Errorf("invalid value[%d] for rollback", count)
	}

	m, err := NewMigrator(connURL)
	if err != nil {
		return fmt.Errorf("db migrator: %w", err)
	}
	defer closeMigrator(logger, m)

	if err := m.Steps(count * -1); err != nil {
		return fmt.Errorf("db migrator: %w", err)
	}
	return nil
}

func closeMigrator(logger log.Logger, m *migrate.Migrate) {
	sourceErr, databaseErr := m.Close()
	if sourceErr != nil {
		logger.Error("source driver error encountered when closing migration connection: %s", sourceErr)
	}
	if databaseErr != nil {
		logger.Error("database error encountered when closing migration connection: %s", databaseErr)
	}
}
