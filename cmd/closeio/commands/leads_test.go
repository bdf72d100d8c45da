package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadsCommand(t *testing.T) {
	cmd := NewLeadsCommand()
	assert.Equal(t, "leads", cmd.Use)
	assert.Equal(t, []string{"lead"}, cmd.Aliases)
	assert.Equal(t, "Manage leads", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "find")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "delete")
}

func TestLeadsFindCommand(t *testing.T) {
	cmd := newLeadsFindCommand()
	assert.Equal(t, "find", cmd.Use)
	assert.Equal(t, "Find leads", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("query"))
}

func TestLeadsGetCommand(t *testing.T) {
	cmd := newLeadsGetCommand()
	assert.Equal(t, "get LEAD_ID", cmd.Use)
	assert.Equal(t, "Get lead details", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestLeadsCreateCommand(t *testing.T) {
	cmd := newLeadsCreateCommand()
	assert.Equal(t, "create", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("data"))
	assert.NotNil(t, cmd.Flags().Lookup("from-file"))
}

func TestParsePayload(t *testing.T) {
	t.Run("inline JSON object", func(t *testing.T) {
		payload, err := parsePayload(`{"name": "Acme", "url": null}`, "")
		require.NoError(t, err)
		assert.Equal(t, "Acme", payload["name"])
		assert.Nil(t, payload["url"])
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := parsePayload("", "")
		assert.ErrorIs(t, err, ErrPayloadRequired)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := parsePayload("not json", "")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("non-object JSON", func(t *testing.T) {
		_, err := parsePayload(`["a", "b"]`, "")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}
