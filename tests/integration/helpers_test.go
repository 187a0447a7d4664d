//go:build integration || integration_vault

package integration

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/ecoshop/backend/pkg/config"
)

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

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// testKeyPrefix isolates keys written by one test run
func testKeyPrefix() string {
	return fmt.Sprintf("ecoshop:test:%d:", time.Now().UnixNano())
}

func newTestRedisClient(t *testing.T, keyPrefix string) *redis.Client {
	t.Helper()

	cfg := &config.RedisConfig{
		Host:      getEnv("TEST_REDIS_HOST", "localhost"),
		Port:      getEnvAsInt("TEST_REDIS_PORT", 6379),
		Password:  getEnv("TEST_REDIS_PASSWORD", ""),
		DB:        getEnvAsInt("TEST_REDIS_DB", 0),
		KeyPrefix: keyPrefix,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg)
	require.NoError(t, err, "Failed to create redis client")
	t.Cleanup(func() { client.Close() })
	return client
}
