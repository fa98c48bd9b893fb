package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	// "production" skips the .env lookup, which does not exist under test.
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "citizen_registry")
	t.Setenv("TOKEN_DURATION", "168h")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "*")
}

func TestNew_MissingTokenSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TOKEN_SECRET", "")

	cfg, err := New()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestNew_LoadsContainer(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TOKEN_SECRET", "test-signing-key")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "test-signing-key", cfg.Token.Secret)
	assert.Equal(t, "168h", cfg.Token.Duration)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
}
