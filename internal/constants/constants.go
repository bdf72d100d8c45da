package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the public Close API origin including the version prefix.
	DefaultBaseURL = "https://app.close.io/api/v1"

	// APIPathPrefix is appended to endpoints given without a path.
	APIPathPrefix = "/api/v1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Content negotiation values sent on every request.
const (
	// ContentTypeJSON is the media type for request and response bodies.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies this client to the remote API.
	DefaultUserAgent = "closeio-go-client/1.0"
)
