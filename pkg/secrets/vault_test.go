package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/ecoshop/backend/pkg/config"
)

func TestNewVaultClient_RequiresConfig(t *testing.T) {
	_, err := NewVaultClient(&config.VaultConfig{Addr: "http://vault:8200"})
	assert.Error(t, err)
}

func TestBuildVaultURL(t *testing.T) {
	url, err := buildVaultURL("http://vault:8200/", "/secret/", "/ecoshop/mobile", 2)
	require.NoError(t, err)
	assert.Equal(t, "http://vault:8200/v1/secret/data/ecoshop/mobile", url)

	url, err = buildVaultURL("http://vault:8200", "kv", "ecoshop", 1)
	require.NoError(t, err)
	assert.Equal(t, "http://vault:8200/v1/kv/ecoshop", url)
}

func TestVaultClient_Get(t *testing.T) {
	tests := []struct {
		name      string
		kvVersion int
		status    int
		body      string
		key       string
		want      string
		wantErr   bool
	}{
		{
			name:      "KV v2 value",
			kvVersion: 2,
			status:    http.StatusOK,
			body:      `{"data": {"data": {"userToken": "tok-123"}}}`,
			key:       "userToken",
			want:      "tok-123",
		},
		{
			name:      "KV v1 value",
			kvVersion: 1,
			status:    http.StatusOK,
			body:      `{"data": {"authToken": "legacy"}}`,
			key:       "authToken",
			want:      "legacy",
		},
		{
			name:      "missing key",
			kvVersion: 2,
			status:    http.StatusOK,
			body:      `{"data": {"data": {}}}`,
			key:       "userToken",
			want:      "",
		},
		{
			name:      "non string value",
			kvVersion: 2,
			status:    http.StatusOK,
			body:      `{"data": {"data": {"userToken": 42}}}`,
			key:       "userToken",
			want:      "42",
		},
		{
			name:      "forbidden",
			kvVersion: 2,
			status:    http.StatusForbidden,
			body:      `{"errors": ["permission denied"]}`,
			key:       "userToken",
			wantErr:   true,
		},
		{
			name:      "wrong KV layout",
			kvVersion: 2,
			status:    http.StatusOK,
			body:      `{"data": {"userToken": "x"}}`,
			key:       "userToken",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "root-token", r.Header.Get("X-Vault-Token"))
				assert.Equal(t, "team", r.Header.Get("X-Vault-Namespace"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewVaultClient(&config.VaultConfig{
				Addr:      server.URL,
				Token:     "root-token",
				Namespace: "team",
				Mount:     "secret",
				Path:      "ecoshop/mobile",
				KVVersion: tt.kvVersion,
			})
			require.NoError(t, err)

			got, err := client.Get(context.Background(), tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
