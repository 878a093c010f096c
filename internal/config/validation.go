package config

import (
	"fmt"
	"slices"
	"strings"
)

// Accepted values for enumerated settings.
var (
	ValidStrategies = []string{"bottomup", "rewalk"}
	ValidFormats    = []string{"xlsx", "json", "table"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"json", "text"}
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Scan.Path == "" {
		errs = append(errs, ValidationError{Field: "scan.path", Message: "must not be empty"})
	}
	if !slices.Contains(ValidStrategies, c.Scan.Strategy) {
		errs = append(errs, oneOf("scan.strategy", c.Scan.Strategy, ValidStrategies))
	}
	if c.Scan.ProgressInterval < 0 {
		errs = append(errs, ValidationError{Field: "scan.progress_interval", Message: "must not be negative"})
	}

	if c.Output.Dir == "" {
		errs = append(errs, ValidationError{Field: "output.dir", Message: "must not be empty"})
	}
	if !slices.Contains(ValidFormats, c.Output.Format) {
		errs = append(errs, oneOf("output.format", c.Output.Format, ValidFormats))
	}
	if c.Output.TimestampLayout == "" {
		errs = append(errs, ValidationError{Field: "output.timestamp_layout", Message: "must not be empty"})
	}

	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		errs = append(errs, oneOf("logging.level", c.Logging.Level, ValidLogLevels))
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		errs = append(errs, oneOf("logging.format", c.Logging.Format, ValidLogFormats))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(field, got string, allowed []string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("invalid value %q: must be one of %v", got, allowed),
	}
}
