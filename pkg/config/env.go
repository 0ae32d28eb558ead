package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvParser provides functionality to parse configuration from environment variables.
// It handles type conversions, validation, and error reporting for all supported
// environment variables defined in the GITWEB_* namespace.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		getEnv: os.Getenv,
	}
}

// NewEnvParserWithGetter creates a new environment variable parser with custom getter.
// This is primarily used for testing with mock environment variables.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{
		getEnv: getter,
	}
}

// ConfigFile returns the config file path named by GITWEB_CONFIG, if any.
func (p *EnvParser) ConfigFile() string {
	return strings.TrimSpace(p.getEnv(EnvConfigFile))
}

// ParseEnv parses all GITWEB environment variables and returns a populated Config.
// It returns an error if any environment variables contain invalid values.
func (p *EnvParser) ParseEnv() (*Config, error) {
	config := New()

	if remote := strings.TrimSpace(p.getEnv(EnvRemote)); remote != "" {
		config.Remote = remote
	}

	// An empty value cannot be told apart from an unset one here, so the
	// environment can only name a browser, never request print-only mode.
	if browser := strings.TrimSpace(p.getEnv(EnvBrowser)); browser != "" {
		config.SetBrowser(browser)
	}

	if err := p.parseLogging(config); err != nil {
		return nil, fmt.Errorf("environment variable parsing errors: %w", err)
	}

	return config, nil
}

// parseLogging parses logging-related environment variables
func (p *EnvParser) parseLogging(config *Config) error {
	var errs []string

	if level := p.getEnv(EnvLogLevel); level != "" {
		if !isValidLogLevel(level) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [%s], got %q", EnvLogLevel, strings.Join(validLogLevels, ", "), level))
		} else {
			config.Logging.Level = level
		}
	}

	if format := p.getEnv(EnvLogFormat); format != "" {
		if !isValidLogFormat(format) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [%s], got %q", EnvLogFormat, strings.Join(validLogFormats, ", "), format))
		} else {
			config.Logging.Format = format
		}
	}

	if verboseStr := p.getEnv(EnvVerbose); verboseStr != "" {
		verbose, err := parseBool(verboseStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvVerbose, err))
		} else {
			config.setLoggingVerbose(verbose)
		}
	}

	if quietStr := p.getEnv(EnvQuiet); quietStr != "" {
		quiet, err := parseBool(quietStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvQuiet, err))
		} else {
			config.setLoggingQuiet(quiet)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// parseBool accepts the usual strconv forms plus yes/no and on/off.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("must be a boolean value, got %q", value)
	}
	return b, nil
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

func isValidLogLevel(level string) bool {
	return contains(validLogLevels, level)
}

func isValidLogFormat(format string) bool {
	return contains(validLogFormats, format)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
