// Package config loads the settings of a test run from an optional file, from environment
// variables prefixed with ORDER_REQUEST_TESTS_, and from built-in defaults, in that order of
// precedence after the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ORDER_REQUEST_TESTS"

	// DefaultUserAgent is what the rendered form reports as its browser. It is pinned so that
	// lead payloads are the same on every machine.
	DefaultUserAgent = "Mozilla/5.0 (linux) AppleWebKit/537.36 (KHTML, like Gecko) order-request-harness/1.0"
)

type Config struct {
	Market         string        `mapstructure:"market"`
	UserAgent      string        `mapstructure:"user_agent"`
	MaskUserAgent  bool          `mapstructure:"mask_user_agent"`
	AwaitTimeoutMS int           `mapstructure:"await_timeout_ms"`
	PollIntervalMS int           `mapstructure:"poll_interval_ms"`
	Logging        LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AwaitTimeout bounds every wait for an asynchronous update: a UI element appearing or a
// request being captured.
func (c Config) AwaitTimeout() time.Duration {
	return time.Duration(c.AwaitTimeoutMS) * time.Millisecond
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func DefaultConfig() *Config {
	return &Config{
		Market:         "se",
		UserAgent:      DefaultUserAgent,
		AwaitTimeoutMS: 1000,
		PollIntervalMS: 50,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration. If configPath is empty, only defaults and environment
// variables are used; otherwise the file must exist, and its format is taken from its
// extension.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, config)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, NewConfigError("", fmt.Sprintf("failed to read config file %s", configPath), err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, NewConfigError("", "failed to unmarshal config", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// AutomaticEnv only applies to keys viper already knows about, so every key gets a default.
func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("market", config.Market)
	v.SetDefault("user_agent", config.UserAgent)
	v.SetDefault("mask_user_agent", config.MaskUserAgent)
	v.SetDefault("await_timeout_ms", config.AwaitTimeoutMS)
	v.SetDefault("poll_interval_ms", config.PollIntervalMS)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.format", config.Logging.Format)
}

func (c *Config) Validate() error {
	if c.Market == "" {
		return NewConfigError("market", "market cannot be empty", nil)
	}
	if c.UserAgent == "" && !c.MaskUserAgent {
		return NewConfigError("user_agent", "user agent cannot be empty unless mask_user_agent is set", nil)
	}
	if c.AwaitTimeoutMS <= 0 {
		return NewConfigError("await_timeout_ms", "timeout must be positive", nil)
	}
	if c.PollIntervalMS <= 0 {
		return NewConfigError("poll_interval_ms", "poll interval must be positive", nil)
	}
	if c.PollIntervalMS > c.AwaitTimeoutMS {
		return NewConfigError("poll_interval_ms", "poll interval cannot be longer than the timeout", nil)
	}

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return NewConfigError("logging.level", fmt.Sprintf("invalid log level: %s", c.Logging.Level), nil)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return NewConfigError("logging.format", fmt.Sprintf("invalid log format: %s", c.Logging.Format), nil)
	}
	return nil
}
