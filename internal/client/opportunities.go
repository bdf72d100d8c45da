package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// OpportunitiesClient implements closeio.OpportunitiesClient.
type OpportunitiesClient struct {
	httpClient *http.Client
}

// NewOpportunitiesClient creates a new opportunities client.
func NewOpportunitiesClient(httpClient *http.Client) *OpportunitiesClient {
	return &OpportunitiesClient{
		httpClient: httpClient,
	}
}

// Get implements closeio.OpportunitiesClient.Get.
func (c *OpportunitiesClient) Get(ctx context.Context, opportunityID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if opportunityID == "" {
		return nil, closeio.ErrOpportunityIDRequired
	}

	path := "/opportunity/" + opportunityID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("getting opportunity: %w", err)
	}

	return resp.Body, nil
}

// Create implements closeio.OpportunitiesClient.Create.
func (c *OpportunitiesClient) Create(ctx context.Context, payload closeio.Payload, opts *closeio.CallOptions) (*closeio.Body, error) {
	if payload == nil {
		return nil, closeio.ErrPayloadRequired
	}

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodPost, "/opportunity/", nil, payload, opts))
	if err != nil {
		return nil, fmt.Errorf("creating opportunity: %w", err)
	}

	return resp.Body, nil
}

// Update implements closeio.OpportunitiesClient.Update.
func (c *OpportunitiesClient) Update(ctx context.Context, opportunityID string, payload closeio.Payload, opts *closeio.CallOptions) (*closeio.Body, error) {
	if opportunityID == "" {
		return nil, closeio.ErrOpportunityIDRequired
	}

	if payload == nil {
		return nil, closeio.ErrPayloadRequired
	}

	path := "/opportunity/" + opportunityID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodPut, path, nil, payload, opts))
	if err != nil {
		return nil, fmt.Errorf("updating opportunity: %w", err)
	}

	return resp.Body, nil
}

// Delete implements closeio.OpportunitiesClient.Delete.
func (c *OpportunitiesClient) Delete(ctx context.Context, opportunityID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if opportunityID == "" {
		return nil, closeio.ErrOpportunityIDRequired
	}

	path := "/opportunity/" + opportunityID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodDelete, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("deleting opportunity: %w", err)
	}

	return resp.Body, nil
}
