// Package closeio defines the public surface of the Close CRM API client:
// the Client interface and its per-resource sub-interfaces, configuration,
// call options, the Body response value, and the error types every
// operation can return.
//
// Use github.com/crmkit/closeio/pkg/closeclient to construct a Client.
package closeio
