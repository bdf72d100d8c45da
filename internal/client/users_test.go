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

func TestUsersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{"id": "user_1", "email": "jane@acme.example"},
				{"id": "user_2", "email": "john@acme.example"},
			},
		})
	}))
	defer server.Close()

	users := NewUsersClient(newTestHTTPClient(server))

	body, err := users.List(context.Background(), nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)

	data, ok := result["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestUsersClient_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    "user_1",
			"email": "jane@acme.example",
		})
	}))
	defer server.Close()

	users := NewUsersClient(newTestHTTPClient(server))

	body, err := users.Me(context.Background(), nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "user_1", result["id"])
}
