package closeclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/closeio/pkg/closeclient"
	"github.com/crmkit/closeio/pkg/closeio"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := closeclient.New(nil)
		require.ErrorIs(t, err, closeio.ErrConfigRequired)
	})

	t.Run("both key forms", func(t *testing.T) {
		t.Parallel()

		_, err := closeclient.New(&closeio.Config{
			APIKey:       "literal",
			APIKeyEnvVar: "SOME_VAR",
		})
		require.ErrorIs(t, err, closeio.ErrAmbiguousAPIKey)
	})
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{
			name:    "defaults to public endpoint",
			baseURL: "",
			want:    "https://app.close.io/api/v1",
		},
		{
			name:    "adds scheme and api prefix",
			baseURL: "crm.example.com",
			want:    "https://crm.example.com/api/v1",
		},
		{
			name:    "trims trailing slash",
			baseURL: "https://crm.example.com/",
			want:    "https://crm.example.com/api/v1",
		},
		{
			name:    "keeps explicit path",
			baseURL: "https://crm.example.com/api/v2",
			want:    "https://crm.example.com/api/v2",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &closeio.Config{BaseURL: testCase.baseURL, APIKey: "key"}

			_, err := closeclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, config.BaseURL)
		})
	}
}

func TestNewWithAPIKey_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/lead/lead_123/", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "api_xxx", user)

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "lead_123"})
	}))
	defer server.Close()

	client, err := closeclient.New(&closeio.Config{
		BaseURL: server.URL,
		APIKey:  "api_xxx",
	})
	require.NoError(t, err)

	body, err := client.Leads().Get(context.Background(), "lead_123", nil)
	require.NoError(t, err)

	result, ok := body.Map()
	require.True(t, ok)
	assert.Equal(t, "lead_123", result["id"])
}

type staticProvider struct {
	key string
}

func (p *staticProvider) APIKey(ctx context.Context) (string, error) {
	return p.key, nil
}

func TestNewWithKeyProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "provider-key", user)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer server.Close()

	client, err := closeclient.NewWithKeyProvider(&closeio.Config{BaseURL: server.URL}, &staticProvider{key: "provider-key"})
	require.NoError(t, err)

	_, err = client.Users().List(context.Background(), nil)
	require.NoError(t, err)
}
