package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/odpf/salt/log"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
	"github.com/odpf/shelflife/internal/store"
)

const (
	tableNamespaces = "namespaces"
	tableWhitelist  = "whitelist"
)

// RecordRepository stores namespace records, one table per collection
type RecordRepository struct {
	db     *DB
	logger log.Logger
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *DB, logger log.Logger) *RecordRepository {
	return &RecordRepository{db: db, logger: logger}
}

// GetAll lists the collection in insertion order, corrupt rows are logged and kept with defaults
func (r *RecordRepository) GetAll(ctx context.Context, collection shelflife.Collection) ([]*shelflife.NamespaceRecord, error) {
	table, err := tableFor(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT name, admins, last_update, cause FROM %s ORDER BY rowid ASC`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to list [%s]", collection), err)
	}
	defer rows.Close()

	records := []*shelflife.NamespaceRecord{}
	for rows.Next() {
		var name, lastUpdate, cause sql.NullString
		var admins []byte
		if err := rows.Scan(&name, &admins, &lastUpdate, &cause); err != nil {
			return nil, errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to read [%s]", collection), err)
		}

		record, err := store.RecordRow{
			Name:       nullable(name),
			Admins:     admins,
			LastUpdate: nullable(lastUpdate),
			Cause:      nullable(cause),
		}.Decode()
		if err != nil {
			r.logger.Warn("%s", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to read [%s]", collection), err)
	}
	return records, nil
}

// Insert adds the record without checking for an existing name
func (r *RecordRepository) Insert(ctx context.Context, collection shelflife.Collection, record *shelflife.NamespaceRecord) error {
	table, err := tableFor(collection)
	if err != nil {
		return err
	}
	row, err := store.NewRecordRow(record)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, name, admins, last_update, cause, created_at) VALUES (?, ?, ?, ?, ?, ?)`, table)
	if _, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		*row.Name,
		string(row.Admins),
		*row.LastUpdate,
		*row.Cause,
		time.Now().UTC(),
	); err != nil {
		return errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to insert [%s]", record.Name), err)
	}
	return nil
}

// DeleteByName removes the oldest record with the name, missing names are not an error
func (r *RecordRepository) DeleteByName(ctx context.Context, collection shelflife.Collection, name string) error {
	table, err := tableFor(collection)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %[1]s WHERE rowid = (
		SELECT rowid FROM %[1]s WHERE name = ? ORDER BY rowid ASC LIMIT 1
	)`, table)
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to delete [%s]", name), err)
	}
	return nil
}

func tableFor(collection shelflife.Collection) (string, error) {
	switch collection {
	case shelflife.CollectionNamespaces:
		return tableNamespaces, nil
	case shelflife.CollectionWhitelist:
		return tableWhitelist, nil
	}
	return "", errors.InvalidArgument(shelflife.EntityCollection, fmt.Sprintf("unknown collection [%s]", collection))
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
