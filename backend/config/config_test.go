package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "testsecret", cfg.JWTSecret)
	assert.Equal(t, 168, cfg.JWTExpiryHours)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	t.Setenv("JWT_EXPIRY_HOURS", "24")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.True(t, cfg.SecureCookies)
}
