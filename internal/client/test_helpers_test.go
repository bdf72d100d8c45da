package client

import (
	"net/http/httptest"

	internalhttp "github.com/crmkit/closeio/internal/http"
)

// newTestHTTPClient builds a pipeline client pointed at a test server,
// without authentication.
func newTestHTTPClient(server *httptest.Server) *internalhttp.Client {
	return internalhttp.NewClient(server.URL, nil)
}
