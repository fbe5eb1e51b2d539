package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Equal(t, 9872, c.Server.Port)
	require.Equal(t, ":9872", c.Addr())
	require.Equal(t, "info", c.Log.Level)
	require.True(t, c.Log.Console)
	require.Empty(t, c.Database.URL)
	require.NotEmpty(t, c.Auth.JWTSecret)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 8123
log:
  level: debug
database:
  url: postgres://u:p@localhost/app
  ssl_insecure: true
auth:
  jwt_secret: file-secret
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c := Load(path)
	require.Equal(t, 8123, c.Server.Port)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "postgres://u:p@localhost/app", c.Database.URL)
	require.True(t, c.Database.SSLInsecure)
	require.Equal(t, "file-secret", c.Auth.JWTSecret)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@host/db")
	t.Setenv("PORT", "7001")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DB_SSL_INSECURE", "true")

	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Equal(t, "postgres://env@host/db", c.Database.URL)
	require.Equal(t, 7001, c.Server.Port)
	require.Equal(t, "env-secret", c.Auth.JWTSecret)
	require.Equal(t, "warn", c.Log.Level)
	require.True(t, c.Database.SSLInsecure)
}

func TestDSNSSLPolicy(t *testing.T) {
	c := &Config{}
	require.Empty(t, c.DSN())

	c.Database.URL = "postgres://u:p@host/db"
	require.Equal(t, "postgres://u:p@host/db", c.DSN())

	c.Database.SSLInsecure = true
	require.Equal(t, "postgres://u:p@host/db?sslmode=require", c.DSN())

	c.Database.URL = "postgres://u:p@host/db?application_name=x"
	require.Equal(t, "postgres://u:p@host/db?application_name=x&sslmode=require", c.DSN())

	// an explicit sslmode always wins
	c.Database.URL = "postgres://u:p@host/db?sslmode=verify-full"
	require.Equal(t, "postgres://u:p@host/db?sslmode=verify-full", c.DSN())
}
