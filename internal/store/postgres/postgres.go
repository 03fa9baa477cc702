package postgres

import (
	"fmt"
	"io"
	stdlog "log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// Connect connect to the DB with custom configuration.
func Connect(connURL string, maxIdleConnections, maxOpenConnections int, writer io.Writer) (*gorm.DB, error) {
	dbLogger := logger.New(
		stdlog.New(writer, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold: slowQueryThreshold,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(postgres.Open(connURL), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("error initializing gorm db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting db: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConnections)
	sqlDB.SetMaxOpenConns(maxOpenConnections)
	return db, nil
}

// Close releases the connection pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
