// Package http implements the shared request pipeline every Close API
// operation goes through: URL construction, basic-auth injection, header
// normalization, JSON body encoding, dispatch, best-effort body decoding,
// and status-to-result classification.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/crmkit/closeio/internal/constants"
	"github.com/crmkit/closeio/pkg/closeio"
)

// Request represents a single API request before the pipeline runs.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response carries the status code and the best-effort decoded body.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       *closeio.Body
}

// Client performs HTTP requests against the Close API.
type Client struct {
	baseURL     string
	keys        closeio.KeyProvider
	retryClient *retryablehttp.Client
	logger      closeio.Logger
	debug       bool
	userAgent   string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger closeio.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client. keys may be nil, in which case
// requests are sent without authentication (useful in tests).
func NewClient(baseURL string, keys closeio.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// Exactly one attempt per call; retry policy is out of scope for this
	// client and left to callers. The policy below also keeps retryablehttp
	// from swallowing 5xx responses before classification sees them.
	retryClient.RetryMax = 0
	retryClient.CheckRetry = func(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
		return false, err
	}
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:     baseURL,
		keys:        keys,
		retryClient: retryClient,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request through the full pipeline. On a classified API
// failure both the response and a typed error are returned, so callers can
// inspect the status and body alongside the error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	// Encoding failures abort before anything is sent; they are never
	// converted into an API failure value.
	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyBytes = encoded
	}

	var reqBody interface{}
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req)

	err = c.setBasicAuth(ctx, httpReq)
	if err != nil {
		return nil, err
	}

	c.logRequest(req, fullURL)

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("dispatching request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       closeio.NewBody(raw),
	}

	c.logResponse(req, resp)

	return resp, classify(resp)
}

// setHeaders applies default headers first, then caller-supplied headers so
// the caller wins on conflict.
func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request) {
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// setBasicAuth resolves the API key for this call and attaches it as the
// basic-auth username with an empty password. An empty key is attached
// as-is; the remote API is the one to reject it.
func (c *Client) setBasicAuth(ctx context.Context, httpReq *retryablehttp.Request) error {
	if c.keys == nil {
		return nil
	}

	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return fmt.Errorf("resolving API key: %w", err)
	}

	httpReq.SetBasicAuth(key, "")

	return nil
}

// classify maps a response onto the result taxonomy. Rules are evaluated
// top to bottom; anything outside them becomes an UnexpectedStatusError
// rather than a silent fall-through.
func classify(resp *Response) error {
	decoded, _ := resp.Body.Map()

	switch {
	case resp.StatusCode == nethttp.StatusNotFound && hasKey(decoded, "error"):
		return &closeio.APIError{
			StatusCode: resp.StatusCode,
			Value:      decoded["error"],
		}

	case resp.StatusCode == nethttp.StatusBadRequest && hasKey(decoded, "errors") && hasKey(decoded, "field-errors"):
		return &closeio.ValidationError{
			Errors:      decoded["errors"],
			FieldErrors: decoded["field-errors"],
			Body:        decoded,
		}

	case resp.StatusCode == nethttp.StatusOK:
		return nil

	default:
		return &closeio.UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}
	}
}

func hasKey(m map[string]interface{}, key string) bool {
	_, ok := m[key]

	return ok
}

func (c *Client) logRequest(req *Request, fullURL string) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})
}

func (c *Client) logResponse(req *Request, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
	})
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
