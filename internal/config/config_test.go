package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("LOGIN_URL", "/users/login/")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "/users/login/", cfg.Auth.LoginURL)
	assert.Equal(t, "NOTE_EVENTS", cfg.Events.NoteEventTopic)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadTracing(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4318")

	cfg := Load()

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "jaeger:4318", cfg.Tracing.Endpoint)
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 7))
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	assert.True(t, cfg.IsProduction())

	cfg.App.Environment = "development"
	assert.False(t, cfg.IsProduction())
}
