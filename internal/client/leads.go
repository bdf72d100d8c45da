package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// LeadsClient implements closeio.LeadsClient.
type LeadsClient struct {
	httpClient *http.Client
}

// NewLeadsClient creates a new leads client.
func NewLeadsClient(httpClient *http.Client) *LeadsClient {
	return &LeadsClient{
		httpClient: httpClient,
	}
}

// Find implements closeio.LeadsClient.Find. The search term is sent as the
// "query" parameter against /lead/.
func (c *LeadsClient) Find(ctx context.Context, term string, opts *closeio.CallOptions) (*closeio.Body, error) {
	query := url.Values{"query": []string{term}}

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, "/lead/", query, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("finding leads: %w", err)
	}

	return resp.Body, nil
}

// Get implements closeio.LeadsClient.Get.
func (c *LeadsClient) Get(ctx context.Context, leadID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if leadID == "" {
		return nil, closeio.ErrLeadIDRequired
	}

	path := "/lead/" + leadID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("getting lead: %w", err)
	}

	return resp.Body, nil
}

// Create implements closeio.LeadsClient.Create.
func (c *LeadsClient) Create(ctx context.Context, payload closeio.Payload, opts *closeio.CallOptions) (*closeio.Body, error) {
	if payload == nil {
		return nil, closeio.ErrPayloadRequired
	}

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodPost, "/lead/", nil, payload, opts))
	if err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}

	return resp.Body, nil
}

// Update implements closeio.LeadsClient.Update.
func (c *LeadsClient) Update(ctx context.Context, leadID string, payload closeio.Payload, opts *closeio.CallOptions) (*closeio.Body, error) {
	if leadID == "" {
		return nil, closeio.ErrLeadIDRequired
	}

	if payload == nil {
		return nil, closeio.ErrPayloadRequired
	}

	path := "/lead/" + leadID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodPut, path, nil, payload, opts))
	if err != nil {
		return nil, fmt.Errorf("updating lead: %w", err)
	}

	return resp.Body, nil
}

// Delete implements closeio.LeadsClient.Delete.
func (c *LeadsClient) Delete(ctx context.Context, leadID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if leadID == "" {
		return nil, closeio.ErrLeadIDRequired
	}

	path := "/lead/" + leadID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodDelete, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("deleting lead: %w", err)
	}

	return resp.Body, nil
}
