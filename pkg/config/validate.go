package config

import (
	"fmt"
	"strings"

	"github.com/goliatone/gitweb/pkg/gitutil"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultRemote    = "origin"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects the configuration for missing or invalid fields.
// It applies every rule and returns aggregated errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	var errors ValidationErrors

	if strings.TrimSpace(cfg.Remote) == "" {
		errors = append(errors, ValidationError{
			Field:   "remote",
			Value:   cfg.Remote,
			Message: "remote name is required",
		})
	}

	errors = append(errors, validateReference(&cfg.Reference)...)
	errors = append(errors, validateLogging(&cfg.Logging)...)

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// ApplyDefaults fills unset fields. It should be called after all sources
// are merged but before validation.
func ApplyDefaults(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}

	applyLoggingDefaults(&cfg.Logging)

	return nil
}

func validateReference(ref *ReferenceConfig) []ValidationError {
	var errors []ValidationError

	if ref.Branch != "" {
		if err := gitutil.ValidateRefName(ref.Branch); err != nil {
			errors = append(errors, ValidationError{
				Field:   "branch",
				Value:   ref.Branch,
				Message: err.Error(),
			})
		}
	}

	if ref.Tag != "" {
		if err := gitutil.ValidateRefName(ref.Tag); err != nil {
			errors = append(errors, ValidationError{
				Field:   "tag",
				Value:   ref.Tag,
				Message: err.Error(),
			})
		}
	}

	if ref.Commit != "" {
		if err := gitutil.ValidateCommitish(ref.Commit); err != nil {
			errors = append(errors, ValidationError{
				Field:   "commit",
				Value:   ref.Commit,
				Message: err.Error(),
			})
		}
	}

	if ref.Tag != "" && ref.Latest {
		errors = append(errors, ValidationError{
			Field:   "tag,latest",
			Value:   fmt.Sprintf("tag=%s, latest=%t", ref.Tag, ref.Latest),
			Message: "tag and latest are mutually exclusive",
		})
	}

	return errors
}

func validateLogging(log *LoggingConfig) []ValidationError {
	var errors []ValidationError

	if log.Level != "" && !isValidLogLevel(log.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   log.Level,
			Message: fmt.Sprintf("invalid log level, must be one of: %s", strings.Join(validLogLevels, ", ")),
		})
	}

	if log.Format != "" && !isValidLogFormat(log.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   log.Format,
			Message: fmt.Sprintf("invalid log format, must be one of: %s", strings.Join(validLogFormats, ", ")),
		})
	}

	if log.Verbose && log.Quiet {
		errors = append(errors, ValidationError{
			Field:   "logging.verbose,logging.quiet",
			Value:   fmt.Sprintf("verbose=%t, quiet=%t", log.Verbose, log.Quiet),
			Message: "verbose and quiet modes are mutually exclusive",
		})
	}

	return errors
}

func applyLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		log.Level = DefaultLogLevel
	}

	if log.Format == "" {
		log.Format = DefaultLogFormat
	}

	if log.Verbose {
		log.Level = "debug"
	}
	if log.Quiet {
		log.Level = "error"
	}
}
