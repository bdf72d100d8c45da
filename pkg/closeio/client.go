package closeio

import (
	"context"
	"time"
)

// LeadsClient provides access to lead resources.
type LeadsClient interface {
	// Find searches leads; the term is sent as the "query" parameter.
	Find(ctx context.Context, term string, opts *CallOptions) (*Body, error)
	Get(ctx context.Context, leadID string, opts *CallOptions) (*Body, error)
	Create(ctx context.Context, payload Payload, opts *CallOptions) (*Body, error)
	Update(ctx context.Context, leadID string, payload Payload, opts *CallOptions) (*Body, error)
	Delete(ctx context.Context, leadID string, opts *CallOptions) (*Body, error)
}

// OpportunitiesClient provides access to opportunity resources.
type OpportunitiesClient interface {
	Get(ctx context.Context, opportunityID string, opts *CallOptions) (*Body, error)
	Create(ctx context.Context, payload Payload, opts *CallOptions) (*Body, error)
	Update(ctx context.Context, opportunityID string, payload Payload, opts *CallOptions) (*Body, error)
	Delete(ctx context.Context, opportunityID string, opts *CallOptions) (*Body, error)
}

// CustomFieldsClient provides access to custom field definitions.
type CustomFieldsClient interface {
	GetLeadField(ctx context.Context, fieldID string, opts *CallOptions) (*Body, error)
}

// OrganizationsClient provides access to organization resources.
type OrganizationsClient interface {
	Get(ctx context.Context, organizationID string, opts *CallOptions) (*Body, error)
}

// StatusesClient provides access to lead and opportunity statuses.
type StatusesClient interface {
	ListLead(ctx context.Context, opts *CallOptions) (*Body, error)
	ListOpportunity(ctx context.Context, opts *CallOptions) (*Body, error)
}

// ActivitiesClient provides access to activity resources.
type ActivitiesClient interface {
	SendEmail(ctx context.Context, payload Payload, opts *CallOptions) (*Body, error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	List(ctx context.Context, opts *CallOptions) (*Body, error)
	// Me returns the user the API key belongs to.
	Me(ctx context.Context, opts *CallOptions) (*Body, error)
}

// Client is the entry point to all Close API resources.
type Client interface {
	Leads() LeadsClient
	Opportunities() OpportunitiesClient
	CustomFields() CustomFieldsClient
	Organizations() OrganizationsClient
	Statuses() StatusesClient
	Activities() ActivitiesClient
	Users() UsersClient
}

// KeyProvider resolves the API key used for HTTP basic authentication.
// Resolution happens on every request, never cached, so providers backed
// by mutable sources (environment variables) always see the current value.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a closeio.Client.
//
// # Authentication
//
// Provide exactly one of:
//  1. APIKey: a literal API key, used as-is.
//  2. APIKeyEnvVar: the name of an environment variable holding the key.
//     The variable is read on every call, not at construction time; an
//     unset variable resolves to the empty string and the request is still
//     sent with an empty basic-auth username.
//
// A custom KeyProvider can be injected instead via
// closeclient.NewWithKeyProvider.
type Config struct {
	// BaseURL: base URL for the Close API including the /api/v1 prefix.
	// closeclient.New normalizes this value by trimming a trailing slash,
	// adding "https://" when no scheme is present, and appending "/api/v1"
	// when the URL carries no path. Defaults to the public Close endpoint.
	BaseURL string

	// APIKey: literal API key used as the basic-auth username.
	APIKey string
	// APIKeyEnvVar: name of an environment variable resolved at call time.
	APIKeyEnvVar string

	// HTTPTimeout: per-request timeout of the underlying transport. Most
	// calls should rely on context deadlines; this is the outer bound.
	HTTPTimeout time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
