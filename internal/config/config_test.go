package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "PORT", "HTTP_PORT", "STORAGE_DIR", "FIXTURES_FILE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_TTL", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "employee-dashboard", cfg.App.AppName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "5000", cfg.App.HTTPPort)
	assert.Equal(t, filepath.Join(os.TempDir(), "employee-dashboard"), cfg.Storage.Dir)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_PortPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PORT", " 9090 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.HTTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DIR", "/data/dash")
	t.Setenv("FIXTURES_FILE", "/etc/fixtures.yaml")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/dash", cfg.Storage.Dir)
	assert.Equal(t, "/etc/fixtures.yaml", cfg.Storage.FixturesFile)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("REDIS_TTL", "-5")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "REDIS_TTL")
}
