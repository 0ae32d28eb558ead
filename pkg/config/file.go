package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// "absent" from "explicitly empty".
type fileConfig struct {
	Remote  *string `yaml:"remote"`
	Browser *string `yaml:"browser"`
	Logging struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Verbose *bool  `yaml:"verbose"`
		Quiet   *bool  `yaml:"quiet"`
	} `yaml:"logging"`
}

// LoadFromFile reads YAML configuration from the provided path.
// Unknown keys are rejected so typos surface instead of being ignored.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	var raw fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, &FileError{Path: path, Err: err}
	}

	config := New()
	if raw.Remote != nil {
		config.Remote = *raw.Remote
	}
	if raw.Browser != nil {
		config.SetBrowser(*raw.Browser)
	}
	config.Logging.Level = raw.Logging.Level
	config.Logging.Format = raw.Logging.Format
	if raw.Logging.Verbose != nil {
		config.setLoggingVerbose(*raw.Logging.Verbose)
	}
	if raw.Logging.Quiet != nil {
		config.setLoggingQuiet(*raw.Logging.Quiet)
	}

	return config, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/gitweb/config.yaml, falling
// back to ~/.config/gitweb/config.yaml. It returns "" when neither base
// directory can be determined.
func DefaultConfigPath(getEnv func(string) string) string {
	if getEnv == nil {
		getEnv = os.Getenv
	}

	if xdg := getEnv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitweb", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "gitweb", "config.yaml")
}
