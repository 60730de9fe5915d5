package config

import (
	"os"
	"path/filepath"
	"testing"

	"resumetric/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockLogger() *errors.Logger {
	logger, _ := errors.New("debug")
	return logger
}

func TestExtractSecretVersion(t *testing.T) {
	tests := []struct {
		name        string
		version     interface{}
		expected    int64
		expectError bool
	}{
		{
			name:     "int64 value",
			version:  int64(42),
			expected: 42,
		},
		{
			name:     "float64 value",
			version:  float64(42.0),
			expected: 42,
		},
		{
			name:     "string value",
			version:  "42",
			expected: 42,
		},
		{
			name:        "invalid string value",
			version:     "not-a-number",
			expectError: true,
		},
		{
			name:        "unsupported type",
			version:     []string{"42"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := &api.Secret{
				Data: map[string]interface{}{
					"metadata": map[string]interface{}{
						"version": tt.version,
					},
				},
			}

			version, err := extractSecretVersion(secret, "secret/data/test")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, version)
		})
	}
}

func TestExtractSecretVersionMissingMetadata(t *testing.T) {
	secret := &api.Secret{Data: map[string]interface{}{}}
	_, err := extractSecretVersion(secret, "secret/data/test")
	assert.ErrorContains(t, err, "metadata")
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Enabled: true, Token: "config-token"})
		require.NoError(t, err)
		assert.Equal(t, "config-token", token)
	})

	t.Run("token from file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("file-token\n"), 0600))

		token, err := resolveVaultToken(VaultConfig{Enabled: true, TokenFile: tokenFile})
		require.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("config token wins over file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("file-token"), 0600))

		token, err := resolveVaultToken(VaultConfig{Enabled: true, Token: "config-token", TokenFile: tokenFile})
		require.NoError(t, err)
		assert.Equal(t, "config-token", token)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{Enabled: true})
		assert.ErrorContains(t, err, "token is required")
	})

	t.Run("unreadable token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{Enabled: true, TokenFile: filepath.Join(t.TempDir(), "missing")})
		assert.Error(t, err)
	})
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, newMockLogger())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNilVaultClientGetSecret(t *testing.T) {
	var client *VaultClient
	_, err := client.GetSecretV2("secret/data/test")
	assert.ErrorContains(t, err, "not initialized")
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	cfg.Vault.Enabled = false
	cfg.Server.APIKeys = []string{"existing"}

	err := ApplyVaultSecrets(cfg, newMockLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"existing"}, cfg.Server.APIKeys)
}
