package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, "0.0.0.0:8001", cfg.Address())
	assert.Equal(t, "mongo", cfg.DBType)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "blog_database", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, []string{"*"}, cfg.AcceptedOrigins)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.True(t, cfg.UsesDefaultAdminPassword())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "a-much-better-secret")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("ACCEPTED_ORIGINS", "https://blog.example.com, http://localhost:3000,")
	t.Setenv("ADMIN_PASSWORD", "changed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "file::memory:", cfg.DatabaseURL)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://blog.example.com", "http://localhost:3000"}, cfg.AcceptedOrigins)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.False(t, cfg.UsesDefaultAdminPassword())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: \"7000\"\nDB_NAME: from_file\n"), 0o600))
	t.Setenv("DB_NAME", "from_env")

	cfg, err := Load(WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "from_env", cfg.DBName)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown store", key: "DB_TYPE", value: "redis"},
		{name: "bcrypt cost too high", key: "BCRYPT_COST", value: "40"},
		{name: "zero ttl", key: "TOKEN_TTL", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.True(t, errs.IsConfigInvalidError(err))
		})
	}
}

func TestValidateRequiresSecret(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.JWTSecret = ""
	assert.True(t, errs.IsConfigInvalidError(cfg.Validate()))
}
