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

func TestOpportunitiesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/opportunity/oppo_123/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "oppo_123",
			"status": "active",
			"value":  50000,
		})
	}))
	defer server.Close()

	opportunities := NewOpportunitiesClient(newTestHTTPClient(server))

	body, err := opportunities.Get(context.Background(), "oppo_123", nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "oppo_123", result["id"])
	assert.Equal(t, "active", result["status"])
}

func TestOpportunitiesClient_Get_EmptyID(t *testing.T) {
	opportunities := NewOpportunitiesClient(nil)

	_, err := opportunities.Get(context.Background(), "", nil)
	require.ErrorIs(t, err, closeio.ErrOpportunityIDRequired)
}

func TestOpportunitiesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/opportunity/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var received map[string]interface{}

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		assert.Equal(t, "lead_123", received["lead_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "oppo_123"})
	}))
	defer server.Close()

	opportunities := NewOpportunitiesClient(newTestHTTPClient(server))

	body, err := opportunities.Create(context.Background(), closeio.Payload{"lead_id": "lead_123"}, nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "oppo_123", result["id"])
}

func TestOpportunitiesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/opportunity/oppo_123/", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var received map[string]interface{}

		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		assert.Equal(t, "won", received["status"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "oppo_123", "status": "won"})
	}))
	defer server.Close()

	opportunities := NewOpportunitiesClient(newTestHTTPClient(server))

	body, err := opportunities.Update(context.Background(), "oppo_123", closeio.Payload{"status": "won"}, nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "won", result["status"])
}

func TestOpportunitiesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/opportunity/oppo_123/", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	opportunities := NewOpportunitiesClient(newTestHTTPClient(server))

	_, err := opportunities.Delete(context.Background(), "oppo_123", nil)
	require.NoError(t, err)
}
