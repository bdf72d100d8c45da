package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// OrganizationsClient implements closeio.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// Get implements closeio.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, organizationID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if organizationID == "" {
		return nil, closeio.ErrOrganizationIDRequired
	}

	path := "/organization/" + organizationID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	return resp.Body, nil
}
