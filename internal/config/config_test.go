package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("ORETALLY_PRIMARY.ENV", "test")
	t.Setenv("ORETALLY_SERVER.PORT", "8080")
	t.Setenv("ORETALLY_SERVER.READ_TIMEOUT", "10")
	t.Setenv("ORETALLY_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("ORETALLY_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("ORETALLY_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
}

func TestNew_DefaultLogging(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestNew_LoggingOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ORETALLY_LOGGING.LEVEL", "debug")
	t.Setenv("ORETALLY_LOGGING.FORMAT", "console")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestNew_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ORETALLY_SERVER.PORT", "")

	_, err := New()
	assert.Error(t, err)
}
