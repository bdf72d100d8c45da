package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendEmailCommand(t *testing.T) {
	cmd := NewSendEmailCommand()
	assert.Equal(t, "send-email", cmd.Use)
	assert.Equal(t, "Send an email activity", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("lead"))
	assert.NotNil(t, cmd.Flags().Lookup("to"))
	assert.NotNil(t, cmd.Flags().Lookup("subject"))
	assert.NotNil(t, cmd.Flags().Lookup("body"))
}

func TestBuildEmailPayload(t *testing.T) {
	t.Run("from flags", func(t *testing.T) {
		payload, err := buildEmailPayload("", "", "lead_123", []string{"a@example.com", "b@example.com"}, "Hello", "Hi there")
		require.NoError(t, err)
		assert.Equal(t, "lead_123", payload["lead_id"])
		assert.Equal(t, []interface{}{"a@example.com", "b@example.com"}, payload["to"])
		assert.Equal(t, "Hello", payload["subject"])
		assert.Equal(t, "Hi there", payload["body_text"])
		assert.Equal(t, "outbox", payload["status"])
	})

	t.Run("inline data wins over flags", func(t *testing.T) {
		payload, err := buildEmailPayload(`{"lead_id": "lead_456"}`, "", "lead_123", nil, "", "")
		require.NoError(t, err)
		assert.Equal(t, "lead_456", payload["lead_id"])
	})

	t.Run("missing lead", func(t *testing.T) {
		_, err := buildEmailPayload("", "", "", nil, "Hello", "")
		assert.ErrorIs(t, err, ErrLeadIDRequired)
	})
}
