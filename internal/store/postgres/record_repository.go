package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/odpf/salt/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
	"github.com/odpf/shelflife/internal/store"
)

const (
	tableNamespaces = "namespaces"
	tableWhitelist  = "whitelist"
)

type NamespaceRecord struct {
	ID         uuid.UUID `gorm:"primary_key;type:uuid"`
	Name       *string
	Admins     datatypes.JSON
	LastUpdate *string
	Cause      *string

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (NamespaceRecord) FromRecord(record *shelflife.NamespaceRecord) (NamespaceRecord, error) {
	row, err := store.NewRecordRow(record)
	if err != nil {
		return NamespaceRecord{}, err
	}
	return NamespaceRecord{
		ID:         uuid.New(),
		Name:       row.Name,
		Admins:     datatypes.JSON(row.Admins),
		LastUpdate: row.LastUpdate,
		Cause:      row.Cause,
	}, nil
}

func (r NamespaceRecord) ToRecord() (*shelflife.NamespaceRecord, error) {
	return store.RecordRow{
		Name:       r.Name,
		Admins:     r.Admins,
		LastUpdate: r.LastUpdate,
		Cause:      r.Cause,
	}.Decode()
}

type RecordRepository struct {
	db     *gorm.DB
	logger log.Logger
}

// GetAll lists the collection oldest first, corrupt rows are logged and kept with defaults
func (repo *RecordRepository) GetAll(ctx context.Context, collection shelflife.Collection) ([]*shelflife.NamespaceRecord, error) {
	table, err := tableFor(collection)
	if err != nil {
		return nil, err
	}

	var rows []NamespaceRecord
	if err := repo.db.WithContext(ctx).Table(table).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to list [%s]", collection), err)
	}

	records := make([]*shelflife.NamespaceRecord, len(rows))
	for i, row := range rows {
		record, err := row.ToRecord()
		if err != nil {
			repo.logger.Warn("%s", err)
		}
		records[i] = record
	}
	return records, nil
}

// Insert adds the record without checking for an existing name
func (repo *RecordRepository) Insert(ctx context.Context, collection shelflife.Collection, record *shelflife.NamespaceRecord) error {
	table, err := tableFor(collection)
	if err != nil {
		return err
	}
	row, err := NamespaceRecord{}.FromRecord(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Table(table).Create(&row).Error; err != nil {
		return errors.Store(shelflife.EntityNamespaceRecord, fmt.Sprintf("unable to insert [%s]", record.Name), err)
	}
	return nil
}

// DeleteByName removes the oldest record with the name, missing names are not an error
func (repo *RecordRepository) DeleteByName(ctx context.Context, collection shelflife.Collection, name string) error {
	table, err := tableFor(collection)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %[1]s WHERE id = (SELECT id FROM %[1]s WHERE name = ? ORDER BY created_at ASC LIMIT 1)`, table)
	if err := repo.db.WithContext(ctx).Exec(query, name).Error; err != nil {
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

func NewRecordRepository(db *gorm.DB, logger log.Logger) *RecordRepository {
	return &RecordRepository{
		db:     db,
		logger: logger,
	}
}
