//go:build integration_vault

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/ecoshop/backend/internal/adapters/tokenstore"
	"github.com/zatekoja/ecoshop/backend/pkg/config"
	"github.com/zatekoja/ecoshop/backend/pkg/secrets"
)

func TestVaultTokenStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	addr := firstNonEmpty(os.Getenv("TEST_VAULT_ADDR"), os.Getenv("VAULT_ADDR"))
	token := firstNonEmpty(os.Getenv("TEST_VAULT_TOKEN"), os.Getenv("VAULT_TOKEN"))
	mount := firstNonEmpty(os.Getenv("TEST_VAULT_MOUNT"), "secret")

	if addr == "" || token == "" {
		t.Skip("Vault integration test requires TEST_VAULT_ADDR/TEST_VAULT_TOKEN")
	}

	if !vaultReady(addr) {
		t.Skip("Vault not reachable")
	}

	path := fmt.Sprintf("ecoshop/tests/%d", time.Now().UnixNano())
	err := writeVaultSecret(addr, token, mount, path, map[string]string{
		"authToken": "vault-test-token",
	})
	require.NoError(t, err)

	client, err := secrets.NewVaultClient(&config.VaultConfig{
		Addr:      addr,
		Token:     token,
		Mount:     mount,
		Path:      path,
		KVVersion: 2,
		Timeout:   3 * time.Second,
	})
	require.NoError(t, err)

	src := tokenstore.NewKeyedTokenSource(tokenstore.NewVaultStore(client), "userToken", "authToken")
	got, ok := src.Token(context.Background())
	require.True(t, ok)
	require.Equal(t, "vault-test-token", got)
}

func vaultReady(addr string) bool {
	client := http.Client{Timeout: 2 * time.Second}
	req, err := http.NewRequest(http.MethodGet, strings.TrimRight(addr, "/")+"/v1/sys/health", nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusTooManyRequests
}

func writeVaultSecret(addr, token, mount, path string, data map[string]string) error {
	body, err := json.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/%s/data/%s", strings.TrimRight(addr, "/"), strings.Trim(mount, "/"), strings.TrimLeft(path, "/"))

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Vault-Token", token)

	client := http.Client{Timeout: 3 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("vault write failed: %s", resp.Status)
	}
	return nil
}
