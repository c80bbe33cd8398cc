package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "development", cfg.Validation.Environment)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.Validation.NormalizeNames)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCHWAG_VALIDATION_ENVIRONMENT", "production")
	t.Setenv("SCHWAG_SERVER_PORT", "9090")
	t.Setenv("SCHWAG_VALIDATION_REDACT_VALUES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Validation.RedactValues)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SCHWAG_SERVER_PORT", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SCHWAG_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
