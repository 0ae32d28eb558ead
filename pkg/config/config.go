package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// Builder orchestrates config assembly from various sources.
// Sources are layered in call order; later sources override earlier ones
// field by field. Build applies defaults and validates the result.
type Builder interface {
	FromEnv() Builder
	FromFlags(cmd *cobra.Command) Builder
	FromFile(path string) Builder
	Build() (*Config, error)
}

// BuilderOption customises a Builder.
type BuilderOption func(*builder)

// WithEnvGetter replaces os.Getenv for every lookup the builder performs.
func WithEnvGetter(getEnv func(string) string) BuilderOption {
	return func(b *builder) {
		if getEnv != nil {
			b.getEnv = getEnv
		}
	}
}

// NewBuilder returns a Builder seeded with an empty configuration.
func NewBuilder(opts ...BuilderOption) Builder {
	b := &builder{
		config: New(),
		getEnv: os.Getenv,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type builder struct {
	config *Config
	getEnv func(string) string
	err    error
}

// FromFile layers a YAML file. An empty path resolves to $GITWEB_CONFIG
// and then the default location; a missing default file is skipped, while
// a missing explicit file is an error.
func (b *builder) FromFile(path string) Builder {
	if b.err != nil {
		return b
	}

	explicit := true
	if path == "" {
		path = NewEnvParserWithGetter(b.getEnv).ConfigFile()
	}
	if path == "" {
		explicit = false
		path = DefaultConfigPath(b.getEnv)
	}
	if path == "" {
		return b
	}

	fileCfg, err := LoadFromFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return b
		}
		b.err = err
		return b
	}

	merge(b.config, fileCfg)
	return b
}

// FromEnv layers GITWEB_* environment variables.
func (b *builder) FromEnv() Builder {
	if b.err != nil {
		return b
	}

	envCfg, err := NewEnvParserWithGetter(b.getEnv).ParseEnv()
	if err != nil {
		b.err = err
		return b
	}

	merge(b.config, envCfg)
	return b
}

// FromFlags layers the flags explicitly set on cmd.
func (b *builder) FromFlags(cmd *cobra.Command) Builder {
	if b.err != nil {
		return b
	}

	flagCfg, err := LoadFromFlags(cmd)
	if err != nil {
		b.err = err
		return b
	}

	merge(b.config, flagCfg)
	return b
}

// Build applies defaults, validates and returns the assembled configuration.
func (b *builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := ApplyDefaults(b.config); err != nil {
		return nil, err
	}
	if err := Validate(b.config); err != nil {
		return nil, err
	}

	return b.config, nil
}

// merge copies every value set in src over dst.
func merge(dst, src *Config) {
	if src == nil {
		return
	}

	if src.Remote != "" {
		dst.Remote = src.Remote
	}
	if src.browserSet() {
		dst.SetBrowser(src.Browser)
	}

	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
		if !src.loggingVerboseSet() && !src.loggingQuietSet() {
			dst.Logging.Verbose = false
			dst.Logging.Quiet = false
		}
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}

	// An explicit verbose/quiet resets the opposite toggle so the newer
	// source decides the level.
	if src.loggingVerboseSet() {
		dst.setLoggingVerbose(src.Logging.Verbose)
		if src.Logging.Verbose {
			dst.setLoggingQuiet(false)
		}
	}
	if src.loggingQuietSet() {
		dst.setLoggingQuiet(src.Logging.Quiet)
		if src.Logging.Quiet {
			dst.setLoggingVerbose(false)
		}
	}

	if src.Reference.Branch != "" {
		dst.Reference.Branch = src.Reference.Branch
	}
	if src.Reference.Tag != "" {
		dst.Reference.Tag = src.Reference.Tag
	}
	if src.Reference.Commit != "" {
		dst.Reference.Commit = src.Reference.Commit
	}
	if src.Reference.Latest {
		dst.Reference.Latest = true
	}
	if src.MergeRequest {
		dst.MergeRequest = true
	}
}
