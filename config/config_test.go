package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "se", config.Market)
	assert.Equal(t, DefaultUserAgent, config.UserAgent)
	assert.False(t, config.MaskUserAgent)
	assert.Equal(t, time.Second, config.AwaitTimeout())
	assert.Equal(t, 50*time.Millisecond, config.PollInterval())
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.NoError(t, config.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"valid config", func(*Config) {}, ""},
		{"missing market", func(c *Config) { c.Market = "" }, "market"},
		{"missing user agent", func(c *Config) { c.UserAgent = "" }, "user_agent"},
		{"missing user agent but masked", func(c *Config) { c.UserAgent = ""; c.MaskUserAgent = true }, ""},
		{"zero timeout", func(c *Config) { c.AwaitTimeoutMS = 0 }, "await_timeout_ms"},
		{"negative interval", func(c *Config) { c.PollIntervalMS = -1 }, "poll_interval_ms"},
		{"interval longer than timeout", func(c *Config) { c.PollIntervalMS = 5000 }, "poll_interval_ms"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr), "expected a ConfigError, got %v", err)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
market = "no"
mask_user_agent = true
await_timeout_ms = 2500

[logging]
level = "debug"
format = "json"
`), 0o600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "no", config.Market)
	assert.True(t, config.MaskUserAgent)
	assert.Equal(t, 2500*time.Millisecond, config.AwaitTimeout())
	assert.Equal(t, 50*time.Millisecond, config.PollInterval())
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_agent: custom-agent\n"), 0o600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-agent", config.UserAgent)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`market = "no"`), 0o600))
	t.Setenv("ORDER_REQUEST_TESTS_MARKET", "se")
	t.Setenv("ORDER_REQUEST_TESTS_LOGGING_LEVEL", "warn")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "se", config.Market)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	var configErr *ConfigError
	assert.True(t, errors.As(err, &configErr))
}

func TestLoadInvalidValueFails(t *testing.T) {
	t.Setenv("ORDER_REQUEST_TESTS_AWAIT_TIMEOUT_MS", "0")
	_, err := Load("")
	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "await_timeout_ms", configErr.Field)
}
