package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/crmkit/closeio/internal/http"
	"github.com/crmkit/closeio/pkg/closeio"
)

// CustomFieldsClient implements closeio.CustomFieldsClient.
type CustomFieldsClient struct {
	httpClient *http.Client
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(httpClient *http.Client) *CustomFieldsClient {
	return &CustomFieldsClient{
		httpClient: httpClient,
	}
}

// GetLeadField implements closeio.CustomFieldsClient.GetLeadField.
func (c *CustomFieldsClient) GetLeadField(ctx context.Context, fieldID string, opts *closeio.CallOptions) (*closeio.Body, error) {
	if fieldID == "" {
		return nil, closeio.ErrFieldIDRequired
	}

	path := "/custom_fields/lead/" + fieldID + "/"

	resp, err := c.httpClient.Do(ctx, buildRequest(nethttp.MethodGet, path, nil, nil, opts))
	if err != nil {
		return nil, fmt.Errorf("getting lead custom field: %w", err)
	}

	return resp.Body, nil
}
