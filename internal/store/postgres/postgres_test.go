//go:build !unit_test
// +build !unit_test

package postgres

import (
	"os"
	"sync"
	"testing"

	"github.com/odpf/salt/log"
	"gorm.io/gorm"
)

var (
	shelflifeDB *gorm.DB
	initDBOnce  sync.Once
	initDBErr   error
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbURL, ok := os.LookupEnv("TEST_SHELFLIFE_DB_URL")
	if !ok {
		t.Skip("TEST_SHELFLIFE_DB_URL is not set")
	}
	initDBOnce.Do(func() { initDBErr = migrateDB(dbURL) })
	if initDBErr != nil {
		t.Fatal(initDBErr)
	}

	truncateTables(shelflifeDB)
	return shelflifeDB
}

// migrateDB drops and recreates the schema once per test run
func migrateDB(dbURL string) error {
	dbConn, err := Connect(dbURL, 1, 1, os.Stdout)
	if err != nil {
		return err
	}
	m, err := NewMigrator(dbURL)
	if err != nil {
		return err
	}
	if err := m.Drop(); err != nil {
		return err
	}
	m.Close()
	if err := Migrate(log.NewNoop(), dbURL); err != nil {
		return err
	}

	shelflifeDB = dbConn
	return nil
}

func truncateTables(db *gorm.DB) {
	db.Exec("TRUNCATE TABLE namespaces")
	db.Exec("TRUNCATE TABLE whitelist")
}
