package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for k := range defaults {
		t.Setenv(k, "")
	}

	cfg := FromViper(newViper())

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12*time.Hour, cfg.SessionIdleTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 100, cfg.NotifyQueueSize)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SESSION_IDLE_TTL", "30m")
	t.Setenv("NOTIFY_QUEUE_SIZE", "8")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := FromViper(newViper())

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 8, cfg.NotifyQueueSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
