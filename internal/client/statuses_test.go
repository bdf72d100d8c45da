package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusesClient_ListLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/lead/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"id": "stat_1", "label": "Potential"},
				{"id": "stat_2", "label": "Qualified"},
			},
		})
	}))
	defer server.Close()

	statuses := NewStatusesClient(newTestHTTPClient(server))

	body, err := statuses.ListLead(context.Background(), nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)

	data, ok := result["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestStatusesClient_ListOpportunity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/opportunity/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"id": "stat_3", "label": "Active"},
			},
		})
	}))
	defer server.Close()

	statuses := NewStatusesClient(newTestHTTPClient(server))

	body, err := statuses.ListOpportunity(context.Background(), nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)

	data, ok := result["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}
