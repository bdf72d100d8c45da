// Package auth implements the closeio.KeyProvider abstraction: credential
// resolution for HTTP basic authentication, either from a literal string or
// from an environment variable read at call time.
package auth

import (
	"context"
	"os"
)

// StaticKeyProvider resolves a literal API key.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider returning the given key as-is.
func NewStaticKeyProvider(key string) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// APIKey implements closeio.KeyProvider.
func (p *StaticKeyProvider) APIKey(ctx context.Context) (string, error) {
	return p.key, nil
}

// EnvKeyProvider resolves the API key from an environment variable on every
// call. An unset variable resolves to the empty string without error; the
// request is still dispatched with an empty basic-auth username and the
// remote API rejects it.
type EnvKeyProvider struct {
	varName string
}

// NewEnvKeyProvider creates a provider reading the named variable at call time.
func NewEnvKeyProvider(varName string) *EnvKeyProvider {
	return &EnvKeyProvider{varName: varName}
}

// APIKey implements closeio.KeyProvider.
func (p *EnvKeyProvider) APIKey(ctx context.Context) (string, error) {
	return os.Getenv(p.varName), nil
}
