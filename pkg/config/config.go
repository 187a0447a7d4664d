package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Env         string
	TrackingAPI TrackingAPIConfig
	TokenStore  TokenStoreConfig
	Redis       RedisConfig
	Vault       VaultConfig
	OTEL        OTELConfig
}

// TrackingAPIConfig holds the search analytics service configuration
type TrackingAPIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	ClientID        string
	SuggestionLimit int
}

// TokenStoreConfig selects where access tokens are read from
type TokenStoreConfig struct {
	Backend string
	Keys    []string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// VaultConfig holds Vault KV configuration
type VaultConfig struct {
	Addr      string
	Token     string
	Namespace string
	Mount     string
	Path      string
	KVVersion int
	Timeout   time.Duration
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

const (
	TokenStoreEnv   = "env"
	TokenStoreRedis = "redis"
	TokenStoreVault = "vault"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Env: getEnv("APP_ENV", "production"),
		TrackingAPI: TrackingAPIConfig{
			BaseURL:         getEnv("TRACKING_API_BASE_URL", "http://localhost:3000/api/search-analytics"),
			Timeout:         time.Duration(getEnvAsInt("TRACKING_API_TIMEOUT_MS", 10000)) * time.Millisecond,
			ClientID:        getEnv("TRACKING_CLIENT_ID", "ecoshop-mobile"),
			SuggestionLimit: getEnvAsInt("TRACKING_SUGGESTION_LIMIT", 5),
		},
		TokenStore: TokenStoreConfig{
			Backend: strings.ToLower(getEnv("TOKEN_STORE", TokenStoreEnv)),
			Keys:    getEnvAsList("TOKEN_KEYS", []string{"userToken", "authToken"}),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getEnvAsInt("REDIS_PORT", 6379),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "ecoshop:auth:"),
		},
		Vault: VaultConfig{
			Addr:      getEnv("VAULT_ADDR", ""),
			Token:     getEnv("VAULT_TOKEN", ""),
			Namespace: getEnv("VAULT_NAMESPACE", ""),
			Mount:     getEnv("VAULT_MOUNT", "secret"),
			Path:      getEnv("VAULT_PATH", ""),
			KVVersion: getEnvAsInt("VAULT_KV_VERSION", 2),
			Timeout:   time.Duration(getEnvAsInt("VAULT_TIMEOUT_MS", 5000)) * time.Millisecond,
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "ecoshop-search-insights"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	switch cfg.TokenStore.Backend {
	case TokenStoreEnv, TokenStoreRedis, TokenStoreVault:
	default:
		return nil, fmt.Errorf("unsupported TOKEN_STORE %q", cfg.TokenStore.Backend)
	}
	if len(cfg.TokenStore.Keys) == 0 {
		return nil, fmt.Errorf("TOKEN_KEYS must name at least one key")
	}

	return cfg, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
