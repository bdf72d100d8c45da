// Package closeclient provides the main entry point for creating Close CRM API clients
package closeclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/crmkit/closeio/internal/client"
	"github.com/crmkit/closeio/internal/constants"
	"github.com/crmkit/closeio/pkg/closeio"
)

// New creates a new Close API client from configuration.
func New(config *closeio.Config) (closeio.Client, error) {
	if config == nil {
		return nil, closeio.ErrConfigRequired
	}

	if config.APIKey != "" && config.APIKeyEnvVar != "" {
		return nil, closeio.ErrAmbiguousAPIKey
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	config.BaseURL = baseURL

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKeyProvider creates a new Close API client with a custom credential
// provider, bypassing the config's APIKey / APIKeyEnvVar selection.
func NewWithKeyProvider(config *closeio.Config, keys closeio.KeyProvider) (closeio.Client, error) {
	if config == nil {
		return nil, closeio.ErrConfigRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	config.BaseURL = baseURL

	apiClient, err := client.NewWithKeyProvider(config, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client with a literal API key against the
// public Close endpoint.
func NewWithAPIKey(key string) (closeio.Client, error) {
	return New(&closeio.Config{
		APIKey: key,
	})
}

// NewFromEnv creates a new client resolving the API key from the named
// environment variable on every call.
func NewFromEnv(varName string) (closeio.Client, error) {
	return New(&closeio.Config{
		APIKeyEnvVar: varName,
	})
}

// normalizeBaseURL applies the endpoint conventions: default to the public
// Close endpoint, trim a trailing slash, add an https scheme when none is
// given, and append the /api/v1 prefix when the URL carries no path.
func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	if parsed.Path == "" {
		baseURL += constants.APIPathPrefix
	}

	return baseURL, nil
}
