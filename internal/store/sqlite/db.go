package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // required for sqlite database/sql driver
)

const memoryDSN = ":memory:"

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dataSourceName == memoryDSN {
		// every new connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	return &DB{db}, nil
}

// Connect opens the database and makes sure both collection tables exist
func Connect(dataSourceName string) (*DB, error) {
	db, err := New(dataSourceName)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations creates the collection tables, it is safe to run more than once
func (db *DB) RunMigrations() error {
	for _, table := range []string{tableNamespaces, tableWhitelist} {
		migration := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
    id TEXT PRIMARY KEY,
    name TEXT,
    admins TEXT,
    last_update TEXT,
    cause TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_name ON %[1]s(name);
`, table)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migrations for table %s: %w", table, err)
		}
	}
	return nil
}
