package tokenstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/redis/go-redis/v9"

	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/ecoshop/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/ecoshop/backend/pkg/secrets"
)

// EnvStore reads credentials from the process environment. A key such as
// "userToken" is looked up as USER_TOKEN.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// NewEnvStore creates a SecretStore over os.LookupEnv
func NewEnvStore() providers.SecretStore {
	return &EnvStore{lookup: os.LookupEnv}
}

// Get returns the environment value for key
func (s *EnvStore) Get(ctx context.Context, key string) (string, error) {
	value, _ := s.lookup(EnvName(key))
	return value, nil
}

// EnvName converts a camelCase key to its UPPER_SNAKE environment name
func EnvName(key string) string {
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
			b.WriteByte('_')
		}
		if r == '-' || r == '.' || r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// RedisStore reads credentials saved under prefixed Redis string keys
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a SecretStore backed by Redis
func NewRedisStore(client *redisclient.Client) providers.SecretStore {
	return &RedisStore{client: client}
}

// Get returns the value under the prefixed key, or "" when it is unset
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Client().Get(ctx, s.client.Key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	return value, nil
}

// VaultStore reads credentials from a Vault KV secret
type VaultStore struct {
	client *secrets.VaultClient
}

// NewVaultStore creates a SecretStore backed by Vault
func NewVaultStore(client *secrets.VaultClient) providers.SecretStore {
	return &VaultStore{client: client}
}

// Get returns the field named key of the configured secret
func (s *VaultStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to read %s from vault: %w", key, err)
	}
	return value, nil
}
