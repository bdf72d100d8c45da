package closeio

import (
	"encoding/json"
	"net/url"
)

// Payload is an arbitrary JSON object sent as a request body. The client
// performs no validation of its contents; the remote API is the authority.
type Payload map[string]interface{}

// CallOptions carries per-call overrides. Caller-supplied values win on
// conflict; the pipeline's defaults act as fallback, never override.
type CallOptions struct {
	// Query parameters merged over the operation's own parameters.
	Query url.Values
	// Headers merged over the default headers.
	Headers map[string]string
}

// Body is the decoded response body of an operation. Bodies are parsed as
// JSON on a best-effort basis: if parsing succeeds JSON reports the decoded
// value, otherwise the raw bytes are passed through unchanged and only Raw
// is meaningful. Callers can branch on the second return of JSON.
type Body struct {
	raw     []byte
	decoded interface{}
	isJSON  bool
}

// NewBody parses raw response bytes into a Body. A JSON parse failure is
// not an error; the raw bytes are retained as-is.
func NewBody(raw []byte) *Body {
	body := &Body{raw: raw}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err == nil {
		body.decoded = decoded
		body.isJSON = true
	}

	return body
}

// Raw returns the response bytes exactly as received.
func (b *Body) Raw() []byte {
	return b.raw
}

// JSON returns the decoded JSON value and whether decoding succeeded.
func (b *Body) JSON() (interface{}, bool) {
	return b.decoded, b.isJSON
}

// Map returns the decoded body as a JSON object, or false when the body is
// not JSON or not an object.
func (b *Body) Map() (map[string]interface{}, bool) {
	m, ok := b.decoded.(map[string]interface{})

	return m, ok && b.isJSON
}

// String renders the decoded value when present, falling back to raw text.
func (b *Body) String() string {
	return string(b.raw)
}
