// Package client implements the closeio.Client interface: one resource
// client per remote resource, all sharing the request pipeline in
// internal/http.
package client

import (
	"net/url"

	"github.com/crmkit/closeio/internal/auth"
	"github.com/crmkit/closeio/internal/constants"
	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// Client implements the closeio.Client interface.
type Client struct {
	httpClient *http.Client
	keys       closeio.KeyProvider
	baseURL    string

	// Resource clients
	leads         closeio.LeadsClient
	opportunities closeio.OpportunitiesClient
	customFields  closeio.CustomFieldsClient
	organizations closeio.OrganizationsClient
	statuses      closeio.StatusesClient
	activities    closeio.ActivitiesClient
	users         closeio.UsersClient
}

// newKeyProvider picks the credential provider matching the config: a
// literal key or an environment variable resolved at call time.
func newKeyProvider(config *closeio.Config) closeio.KeyProvider {
	if config.APIKeyEnvVar != "" {
		return auth.NewEnvKeyProvider(config.APIKeyEnvVar)
	}

	return auth.NewStaticKeyProvider(config.APIKey)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *closeio.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new Close API client from configuration.
func New(config *closeio.Config) (*Client, error) {
	return NewWithKeyProvider(config, newKeyProvider(config))
}

// NewWithKeyProvider creates a new Close API client with a custom
// credential provider.
func NewWithKeyProvider(config *closeio.Config, keys closeio.KeyProvider) (*Client, error) {
	if keys == nil {
		return nil, closeio.ErrKeyProviderNil
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, keys, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		keys:       keys,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.leads = NewLeadsClient(c.httpClient)
	c.opportunities = NewOpportunitiesClient(c.httpClient)
	c.customFields = NewCustomFieldsClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.statuses = NewStatusesClient(c.httpClient)
	c.activities = NewActivitiesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}

// Leads implements closeio.Client.Leads.
func (c *Client) Leads() closeio.LeadsClient {
	return c.leads
}

// Opportunities implements closeio.Client.Opportunities.
func (c *Client) Opportunities() closeio.OpportunitiesClient {
	return c.opportunities
}

// CustomFields implements closeio.Client.CustomFields.
func (c *Client) CustomFields() closeio.CustomFieldsClient {
	return c.customFields
}

// Organizations implements closeio.Client.Organizations.
func (c *Client) Organizations() closeio.OrganizationsClient {
	return c.organizations
}

// Statuses implements closeio.Client.Statuses.
func (c *Client) Statuses() closeio.StatusesClient {
	return c.statuses
}

// Activities implements closeio.Client.Activities.
func (c *Client) Activities() closeio.ActivitiesClient {
	return c.activities
}

// Users implements closeio.Client.Users.
func (c *Client) Users() closeio.UsersClient {
	return c.users
}

// buildRequest assembles a pipeline request, merging per-call overrides.
// Caller-supplied query values and headers win on conflicting keys; the
// operation's own values act as fallback.
func buildRequest(method, path string, query url.Values, body interface{}, opts *closeio.CallOptions) *http.Request {
	req := &http.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	}

	if opts == nil {
		return req
	}

	if len(opts.Query) > 0 {
		merged := url.Values{}
		for key, values := range query {
			merged[key] = values
		}

		for key, values := range opts.Query {
			merged[key] = values
		}

		req.Query = merged
	}

	req.Headers = opts.Headers

	return req
}
