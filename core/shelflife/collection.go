package shelflife

import (
	"fmt"

	"github.com/odpf/shelflife/internal/errors"
)

type Collection string

const (
	// CollectionNamespaces tracks namespaces that are candidates for deletion
	CollectionNamespaces Collection = "namespaces"
	// CollectionWhitelist tracks namespaces exempted from deletion
	CollectionWhitelist Collection = "whitelist"
)

func CollectionFrom(name string) (Collection, error) {
	switch c := Collection(name); c {
	case CollectionNamespaces, CollectionWhitelist:
		return c, nil
	}
	return "", errors.InvalidArgument(EntityCollection, fmt.Sprintf("unknown collection [%s], use %s or %s",
		name, CollectionNamespaces, CollectionWhitelist))
}

func (c Collection) String() string {
	return string(c)
}

func (c Collection) Heading() string {
	switch c {
	case CollectionNamespaces:
		return "Projects with ShelfLives:"
	case CollectionWhitelist:
		return "Whitelisted projects:"
	}
	return "Unknown table:"
}

func (c Collection) AddedMessage(namespace string) string {
	switch c {
	case CollectionNamespaces:
		return fmt.Sprintf("Putting a ShelfLife on %s", namespace)
	case CollectionWhitelist:
		return fmt.Sprintf("Whitelisting %s", namespace)
	}
	return fmt.Sprintf("Adding %s to %s", namespace, c)
}
