package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// ActivitiesClient implements closeio.ActivitiesClient.
type ActivitiesClient struct {
	httpClient *http.Client
}

// NewActivitiesClient creates a new activities client.
func NewActivitiesClient(httpClient *http.Client) *ActivitiesClient {
	return &ActivitiesClient{
		httpClient: httpClient,
	}
}

// SendEmail implements closeio.ActivitiesClient.SendEmail.
func (c *ActivitiesClient) SendEmail(ctx context.Context, payload closeio.Payload, opts *closeio.CallOptions) (*closeio.Body, error) {
	if payload == nil {
		return nil, closeio.ErrPayloadRequired
	}

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodPost, "/activity/email/", nil, payload, opts))
	if err != nil {
		return nil, fmt.Errorf("sending email activity: %w", err)
	}

	return resp.Body, nil
}
