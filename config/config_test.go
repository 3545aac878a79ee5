package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, BackendMemory, cfg.Storage.Backend)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", BackendSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("DRAFTS_TTL", "1h")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, "/tmp/x.db", cfg.SQLite.Path)
	require.Equal(t, time.Hour, cfg.Drafts.TTL)
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:  ServerConfig{Port: 1},
		Storage: StorageConfig{Backend: BackendMemory},
		Auth:    AuthConfig{JWTSecret: "s", TokenTTL: time.Hour},
		Drafts:  DraftsConfig{TTL: time.Hour, Capacity: 10},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Storage.Backend = "redis"
	require.Error(t, bad.Validate())

	bad = base
	bad.Storage.Backend = BackendPostgres
	require.Error(t, bad.Validate())

	// the signing secret is checked separately so migrate needs none
	bad = base
	bad.Auth.JWTSecret = ""
	require.NoError(t, bad.Validate())

	bad = base
	bad.Server.Port = 0
	require.Error(t, bad.Validate())
}

func TestAuthValidate(t *testing.T) {
	require.Error(t, AuthConfig{}.Validate())
	require.Error(t, AuthConfig{JWTSecret: "change-me"}.Validate())
	require.NoError(t, AuthConfig{JWTSecret: strings.Repeat("k", MinSecretLen)}.Validate())
}

func TestNewConfigHasNoDefaultSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.Auth.JWTSecret)
	require.Error(t, cfg.Auth.Validate())
}
