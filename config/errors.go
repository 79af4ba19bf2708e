package config

import "fmt"

// ConfigError reports an invalid or unreadable configuration value.
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, msg)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func NewConfigError(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}
