package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// StatusesClient implements closeio.StatusesClient.
type StatusesClient struct {
	httpClient *http.Client
}

// NewStatusesClient creates a new statuses client.
func NewStatusesClient(httpClient *http.Client) *StatusesClient {
	return &StatusesClient{
		httpClient: httpClient,
	}
}

// ListLead implements closeio.StatusesClient.ListLead.
func (c *StatusesClient) ListLead(ctx context.Context, opts *closeio.CallOptions) (*closeio.Body, error) {
	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, "/status/lead/", nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("listing lead statuses: %w", err)
	}

	return resp.Body, nil
}

// ListOpportunity implements closeio.StatusesClient.ListOpportunity.
func (c *StatusesClient) ListOpportunity(ctx context.Context, opts *closeio.CallOptions) (*closeio.Body, error) {
	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, "/status/opportunity/", nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("listing opportunity statuses: %w", err)
	}

	return resp.Body, nil
}
