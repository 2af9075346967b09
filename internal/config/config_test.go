package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  host: db.internal
  dbname: coursehub_test
jwt:
  secret: file-secret
  access_token_expiration: "24h"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "coursehub_test", cfg.Database.DBName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)

	// defaults survive for keys the file omits
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "coursehub.app", cfg.JWT.Issuer)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)

	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
  access_token_expiration: "three days"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token expiration")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.DBName = "coursehub"

	assert.Equal(t,
		"postgres://app:pw@db:5432/coursehub?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
