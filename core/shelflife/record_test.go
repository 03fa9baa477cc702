package shelflife_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/shelflife/core/shelflife"
)

func TestNamespaceRecord(t *testing.T) {
	t.Run("NewNamespaceRecord", func(t *testing.T) {
		t.Run("returns error when name is empty", func(t *testing.T) {
			record, err := shelflife.NewNamespaceRecord("", []string{"alice"}, "N/A", shelflife.CauseDeployment)

			assert.Nil(t, record)
			assert.EqualError(t, err, "invalid argument for entity namespace_record: namespace name is empty")
		})
		t.Run("defaults nil admins to an empty list", func(t *testing.T) {
			record, err := shelflife.NewNamespaceRecord("team-x", nil, shelflife.NotAvailable, shelflife.CauseDeployment)

			assert.Nil(t, err)
			assert.NotNil(t, record.Admins)
			assert.Empty(t, record.Admins)
		})
	})
	t.Run("ContainsName", func(t *testing.T) {
		records := []*shelflife.NamespaceRecord{
			{Name: "team-a"},
			nil,
			{Name: "team-x"},
		}

		assert.True(t, shelflife.ContainsName(records, "team-x"))
		assert.False(t, shelflife.ContainsName(records, "team"))
		assert.False(t, shelflife.ContainsName(records, "TEAM-X"))
		assert.False(t, shelflife.ContainsName(nil, "team-x"))
	})
	t.Run("String", func(t *testing.T) {
		record := &shelflife.NamespaceRecord{
			Name:       "team-x",
			Admins:     []string{"alice", "bob"},
			LastUpdate: "2023-01-01T00:00:00Z",
			Cause:      shelflife.CauseDeployment,
		}

		assert.Equal(t, `team-x ["alice" "bob"] 2023-01-01T00:00:00Z Deployment`, record.String())
	})
}

func TestCollection(t *testing.T) {
	t.Run("CollectionFrom", func(t *testing.T) {
		t.Run("accepts namespaces and whitelist", func(t *testing.T) {
			c, err := shelflife.CollectionFrom("namespaces")
			assert.Nil(t, err)
			assert.Equal(t, shelflife.CollectionNamespaces, c)

			c, err = shelflife.CollectionFrom("whitelist")
			assert.Nil(t, err)
			assert.Equal(t, shelflife.CollectionWhitelist, c)
		})
		t.Run("rejects anything else", func(t *testing.T) {
			c, err := shelflife.CollectionFrom("Whitelist")

			assert.Equal(t, shelflife.Collection(""), c)
			assert.ErrorContains(t, err, "unknown collection [Whitelist]")
		})
	})
	t.Run("Heading", func(t *testing.T) {
		assert.Equal(t, "Projects with ShelfLives:", shelflife.CollectionNamespaces.Heading())
		assert.Equal(t, "Whitelisted projects:", shelflife.CollectionWhitelist.Heading())
	})
	t.Run("AddedMessage", func(t *testing.T) {
		assert.Equal(t, "Putting a ShelfLife on team-x", shelflife.CollectionNamespaces.AddedMessage("team-x"))
		assert.Equal(t, "Whitelisting team-x", shelflife.CollectionWhitelist.AddedMessage("team-x"))
	})
}

func TestAnswerFrom(t *testing.T) {
	cases := map[string]shelflife.Answer{
		"y":     shelflife.AnswerYes,
		"y\n":   shelflife.AnswerYes,
		"  n  ": shelflife.AnswerNo,
		"Y":     shelflife.AnswerInvalid,
		"yes":   shelflife.AnswerInvalid,
		"maybe": shelflife.AnswerInvalid,
		"":      shelflife.AnswerInvalid,
		"\r\n":  shelflife.AnswerInvalid,
		"n\r\n": shelflife.AnswerNo,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, shelflife.AnswerFrom(input), "input %q", input)
	}
}

func TestHostName(t *testing.T) {
	t.Run("strips scheme and trailing slashes", func(t *testing.T) {
		for _, host := range []string{"api.example.io:6443", "https://api.example.io:6443", "http://api.example.io:6443//"} {
			assert.Equal(t, "api.example.io:6443", shelflife.HostName(host))
		}
	})
	t.Run("keeps path segments other than the trailing slash", func(t *testing.T) {
		assert.Equal(t, "proxy.example.io/okd", shelflife.HostName("https://proxy.example.io/okd/"))
	})
}
