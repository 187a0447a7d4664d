package tokenstore

import (
	"context"

	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/observability"
)

// KeyedTokenSource looks a token up under a list of keys, in order
type KeyedTokenSource struct {
	store providers.SecretStore
	keys  []string
}

// NewKeyedTokenSource creates a TokenSource over store
func NewKeyedTokenSource(store providers.SecretStore, keys ...string) *KeyedTokenSource {
	return &KeyedTokenSource{store: store, keys: keys}
}

// Token returns the first non-empty value among the keys. A failing store
// is logged and reported as no token.
func (s *KeyedTokenSource) Token(ctx context.Context) (string, bool) {
	for _, key := range s.keys {
		value, err := s.store.Get(ctx, key)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("token store read failed")
			return "", false
		}
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// StaticTokenSource always returns the same token; empty means signed out
type StaticTokenSource string

// Token returns the static token
func (s StaticTokenSource) Token(ctx context.Context) (string, bool) {
	return string(s), s != ""
}

var (
	_ providers.TokenSource = (*KeyedTokenSource)(nil)
	_ providers.TokenSource = StaticTokenSource("")
)
