package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/penta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/penta", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, 50, cfg.TakeMin)
	assert.Equal(t, 1000, cfg.TakeMax)
	assert.Equal(t, 200, cfg.TakeDefault)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.BearerToken)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/penta")
	t.Setenv("PORT", "9090")
	t.Setenv("API_TAKE_MIN", "10")
	t.Setenv("API_TAKE_MAX", "100")
	t.Setenv("API_TAKE_DEFAULT", "50")
	t.Setenv("API_BEARER_TOKEN", "sekrit")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 10, cfg.TakeMin)
	assert.Equal(t, 100, cfg.TakeMax)
	assert.Equal(t, 50, cfg.TakeDefault)
	assert.Equal(t, "sekrit", cfg.BearerToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/penta")

	t.Setenv("PORT", "zero")
	_, err := Load()
	assert.Error(t, err)
	t.Setenv("PORT", "")

	t.Setenv("API_TAKE_MIN", "-5")
	_, err = Load()
	assert.Error(t, err)
	t.Setenv("API_TAKE_MIN", "")

	t.Setenv("API_TAKE_MIN", "500")
	t.Setenv("API_TAKE_MAX", "100")
	_, err = Load()
	assert.Error(t, err)
}
