package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("LOG_OUTPUT", "")

		assert.Equal(t, LoggerConfig{Level: "info", Format: "json", Output: "stdout"}, LoadLoggerConfigFromEnv())
	})

	t.Run("local development", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("LOG_OUTPUT", "/var/log/leaderboard.log")

		cfg := LoadLoggerConfigFromEnv()
		assert.NoError(t, cfg.Validate())
		assert.False(t, cfg.IsProduction())
		assert.True(t, cfg.IsFileOutput())
	})
}

func TestLoggerConfig_Validate(t *testing.T) {
	assert.NoError(t, LoggerConfig{Level: "warn", Format: "json"}.Validate())
	assert.ErrorContains(t, LoggerConfig{Level: "trace", Format: "json"}.Validate(), "invalid log level: trace")
	assert.ErrorContains(t, LoggerConfig{Level: "info", Format: "logfmt"}.Validate(), "invalid log format: logfmt")
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.True(t, LoggerConfig{Level: "error", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}

func TestLoggerConfig_IsFileOutput(t *testing.T) {
	assert.False(t, LoggerConfig{Output: "stdout"}.IsFileOutput())
	assert.False(t, LoggerConfig{Output: "stderr"}.IsFileOutput())
	assert.False(t, LoggerConfig{Output: ""}.IsFileOutput())
	assert.True(t, LoggerConfig{Output: "/var/log/leaderboard.log"}.IsFileOutput())
}
