package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SCHEMA_FILE", "")
	t.Setenv("RATE_LIMIT", "")

	cfg := FromEnv()

	assert.Equal(t, DefaultAddr, cfg.GetAddr())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Empty(t, cfg.GetSchemaFile())
	assert.Equal(t, DefaultRateLimit, cfg.GetRateLimit())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SCHEMA_FILE", "schemas/signin.yaml")
	t.Setenv("RATE_LIMIT", "3")

	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.GetAddr())
	assert.Equal(t, "json", cfg.GetLogFormat())
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, "schemas/signin.yaml", cfg.GetSchemaFile())
	assert.Equal(t, 3, cfg.GetRateLimit())
}

func TestFromEnv_InvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	assert.Equal(t, DefaultRateLimit, FromEnv().GetRateLimit())
}
