package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// UsersClient implements closeio.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements closeio.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *closeio.CallOptions) (*closeio.Body, error) {
	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, "/user/", nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return resp.Body, nil
}

// Me implements closeio.UsersClient.Me.
func (c *UsersClient) Me(ctx context.Context, opts *closeio.CallOptions) (*closeio.Body, error) {
	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, "/me/", nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return resp.Body, nil
}
