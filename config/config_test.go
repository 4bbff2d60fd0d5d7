package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/app")
	t.Setenv("API_KEY", "sekrit")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, float64(20), cfg.Server.RatePerSec)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/app")
	t.Setenv("API_KEY", "sekrit")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("RATE_PER_SEC", "2.5")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2.5, cfg.Server.RatePerSec)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("API_KEY", "sekrit")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")

	t.Setenv("DB_DSN", "postgres://localhost/app")
	t.Setenv("API_KEY", "")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	assert.Equal(t, 10, getEnvAsInt("DB_MAX_OPEN_CONNS", 10))
}
