package providers

import (
	"context"
)

// TokenSource supplies the user's access token.
type TokenSource interface {
	// Token returns the access token and whether one is available.
	// Storage failures are reported as absent, never as errors.
	Token(ctx context.Context) (string, bool)
}

// SecretStore is a key/value store holding credentials
type SecretStore interface {
	// Get returns the value stored under key, or "" if the key is unset
	Get(ctx context.Context, key string) (string, error)
}
