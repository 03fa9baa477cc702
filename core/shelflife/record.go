package shelflife

import (
	"fmt"

	"github.com/odpf/shelflife/internal/errors"
)

const (
	EntityNamespaceRecord = "namespace_record"
	EntityCollection      = "collection"

	// NotAvailable marks a namespace without any deployment condition
	NotAvailable = "N/A"

	// CauseDeployment is the only cause produced today, build and rollout activity are reserved
	CauseDeployment = "Deployment"
)

// NamespaceRecord is the activity summary of one namespace, either synthesized
// from the cluster or read back from a collection
type NamespaceRecord struct {
	Name       string
	Admins     []string
	LastUpdate string
	Cause      string
}

func NewNamespaceRecord(name string, admins []string, lastUpdate, cause string) (*NamespaceRecord, error) {
	if name == "" {
		return nil, errors.InvalidArgument(EntityNamespaceRecord, "namespace name is empty")
	}
	if admins == nil {
		admins = []string{}
	}
	return &NamespaceRecord{
		Name:       name,
		Admins:     admins,
		LastUpdate: lastUpdate,
		Cause:      cause,
	}, nil
}

func (r *NamespaceRecord) String() string {
	return fmt.Sprintf("%s %q %s %s", r.Name, r.Admins, r.LastUpdate, r.Cause)
}

// ContainsName reports whether a record with exactly the given name is present
func ContainsName(records []*NamespaceRecord, name string) bool {
	for _, r := range records {
		if r != nil && r.Name == name {
			return true
		}
	}
	return false
}
