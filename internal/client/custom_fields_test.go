package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/closeio/pkg/closeio"
)

func TestCustomFieldsClient_GetLeadField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/custom_fields/lead/cf_123/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   "cf_123",
			"name": "Industry",
			"type": "choices",
		})
	}))
	defer server.Close()

	customFields := NewCustomFieldsClient(newTestHTTPClient(server))

	body, err := customFields.GetLeadField(context.Background(), "cf_123", nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "Industry", result["name"])
}

func TestCustomFieldsClient_GetLeadField_EmptyID(t *testing.T) {
	customFields := NewCustomFieldsClient(nil)

	_, err := customFields.GetLeadField(context.Background(), "", nil)
	require.ErrorIs(t, err, closeio.ErrFieldIDRequired)
}
