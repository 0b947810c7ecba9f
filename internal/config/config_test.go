package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_URL", "http://api.local/")
	t.Setenv("AUTH_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.Gateway.APIURL)
	assert.Equal(t, "http://api.local", cfg.Gateway.AuthURL)
	assert.Equal(t, time.Duration(0), cfg.Gateway.Timeout)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.False(t, cfg.Session.DevLogin)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "http://api.local")
	t.Setenv("AUTH_URL", "http://auth.local")
	t.Setenv("GATEWAY_TIMEOUT", "15s")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("AUTH_DEV_LOGIN", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://auth.local", cfg.Gateway.AuthURL)
	assert.Equal(t, 15*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.True(t, cfg.Session.DevLogin)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("API_URL", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("API_URL", "http://api.local")
	t.Setenv("SESSION_STORE", "disk")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_STORE")
}
