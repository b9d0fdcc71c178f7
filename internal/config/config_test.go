package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "testdata-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "69", cfg.Seed.WorkerName)
	assert.Equal(t, "example.com", cfg.Seed.EmailDomain)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 100, cfg.Database.MaxConnections)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SEED_WORKER_NAME", "3")
	t.Setenv("SEED_EMAIL_DOMAIN", "test.invalid")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3", cfg.Seed.WorkerName)
	assert.Equal(t, "test.invalid", cfg.Seed.EmailDomain)
	assert.Equal(t, 9090, cfg.App.Port)
}
