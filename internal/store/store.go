package store

import (
	"encoding/json"
	"fmt"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
)

// RecordRow is a namespace record as persisted by the sql backends, every column may be null
type RecordRow struct {
	Name       *string
	Admins     []byte
	LastUpdate *string
	Cause      *string
}

// NewRecordRow converts the record into its persisted shape
func NewRecordRow(record *shelflife.NamespaceRecord) (RecordRow, error) {
	admins := record.Admins
	if admins == nil {
		admins = []string{}
	}
	adminsJSON, err := json.Marshal(admins)
	if err != nil {
		return RecordRow{}, errors.InternalError(shelflife.EntityNamespaceRecord,
			fmt.Sprintf("unable to encode admins for [%s]", record.Name), err)
	}
	return RecordRow{
		Name:       &record.Name,
		Admins:     adminsJSON,
		LastUpdate: &record.LastUpdate,
		Cause:      &record.Cause,
	}, nil
}

// Decode never drops a row: missing fields default to empty values and a corrupt
// admins column yields an empty list together with a Decode diagnostic
func (r RecordRow) Decode() (*shelflife.NamespaceRecord, error) {
	record := &shelflife.NamespaceRecord{
		Name:       valueOf(r.Name),
		Admins:     []string{},
		LastUpdate: valueOf(r.LastUpdate),
		Cause:      valueOf(r.Cause),
	}
	if len(r.Admins) == 0 {
		return record, nil
	}

	var admins []string
	if err := json.Unmarshal(r.Admins, &admins); err != nil {
		return record, errors.Decode(shelflife.EntityNamespaceRecord,
			fmt.Sprintf("corrupt admins for [%s], defaulting to empty list", record.Name), err)
	}
	if admins != nil {
		record.Admins = admins
	}
	return record, nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
