// Package closeclient provides the primary entry point for constructing a
// Close CRM API client that implements the closeio.Client interface.
//
// It layers configuration, HTTP transport, and credential resolution on top
// of the resource interfaces and types defined in the closeio package. Most
// applications should import closeclient to build a client, then use the
// returned closeio.Client to access resource-specific clients, for example
// Leads(), Opportunities(), Users().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/crmkit/closeio/pkg/closeclient"
//	  "github.com/crmkit/closeio/pkg/closeio"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a literal API key against the public endpoint.
//	  cli, err := closeclient.NewWithAPIKey("api_xxx")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or resolve the key from an environment variable on every call,
//	  // so rotated keys take effect without rebuilding the client:
//	  cli, err = closeclient.NewFromEnv("CLOSEIO_API_KEY")
//	  if err != nil { log.Fatal(err) }
//
//	  body, err := cli.Leads().Find(ctx, "acme", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = body
//	}
//
// # Error handling
//
// Expected remote failures come back as typed error values: a 404 carrying
// an "error" field becomes *closeio.APIError, a 400 carrying "errors" and
// "field-errors" becomes *closeio.ValidationError, and any response outside
// the classification rules becomes *closeio.UnexpectedStatusError. Use
// closeio.IsNotFound, closeio.IsValidation, and closeio.IsUnexpectedStatus
// (or errors.As) to branch.
//
// # Helpers
//
// The package also provides NewWithKeyProvider for injecting a custom
// closeio.KeyProvider implementation.
package closeclient
