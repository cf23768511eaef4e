package config

import "fmt"

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Message)
}

// validLogLevels is the set of accepted logging levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats is the set of accepted logging formats.
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// ValidateLogLevel checks that level is one of debug, info, warn, error.
func ValidateLogLevel(level string) error {
	if !validLogLevels[level] {
		return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("invalid level: %q", level)}
	}
	return nil
}

// ValidateLogFormat checks that format is json or console.
func ValidateLogFormat(format string) error {
	if !validLogFormats[format] {
		return &ValidationError{Field: "logging.format", Message: fmt.Sprintf("invalid format: %q", format)}
	}
	return nil
}
