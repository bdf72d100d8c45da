package closeio

import (
	"errors"
	"fmt"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrBaseURLRequired        = errors.New("base URL is required")
	ErrAmbiguousAPIKey        = errors.New("provide either a literal API key or an environment variable name, not both")
	ErrKeyProviderNil         = errors.New("key provider must not be nil")
	ErrLeadIDRequired         = errors.New("lead ID is required")
	ErrOpportunityIDRequired  = errors.New("opportunity ID is required")
	ErrOrganizationIDRequired = errors.New("organization ID is required")
	ErrFieldIDRequired        = errors.New("custom field ID is required")
	ErrPayloadRequired        = errors.New("payload is required")
)

// APIError represents a not-found failure from the Close API: an HTTP 404
// whose body carries an "error" field. Value holds the remote-supplied
// reason exactly as decoded.
type APIError struct {
	StatusCode int
	Value      interface{}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if s, ok := e.Value.(string); ok {
		return s
	}

	return fmt.Sprintf("api error (status %d): %v", e.StatusCode, e.Value)
}

// ValidationError represents a field validation failure from the Close API:
// an HTTP 400 whose body carries both an aggregate "errors" list and a
// per-field "field-errors" object. The whole decoded body is preserved,
// not flattened.
type ValidationError struct {
	Errors      interface{}
	FieldErrors interface{}
	Body        map[string]interface{}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: errors=%v field-errors=%v", e.Errors, e.FieldErrors)
}

// UnexpectedStatusError represents a status/body combination outside the
// classification rules (not 200, not a recognized 404 or 400 shape). It is
// a distinct type so callers can tell an unmodeled response apart from the
// recoverable failures above.
type UnexpectedStatusError struct {
	StatusCode int
	Body       *Body
}

// Error implements the error interface for UnexpectedStatusError.
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body.String())
}

// IsNotFound checks if the error is a not-found failure.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsValidation checks if the error is a field validation failure.
func IsValidation(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

// IsUnexpectedStatus checks if the error is an unclassified response.
func IsUnexpectedStatus(err error) bool {
	statusErr := &UnexpectedStatusError{}

	return errors.As(err, &statusErr)
}
