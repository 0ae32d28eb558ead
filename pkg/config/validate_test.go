package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/gitweb/pkg/config"
)

func TestValidate_NilConfig(t *testing.T) {
	err := config.Validate(nil)
	if err == nil {
		t.Fatal("expected validation error for nil config")
	}
	if !strings.Contains(err.Error(), "configuration cannot be nil") {
		t.Errorf("expected nil config error message, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Remote: "origin",
			Logging: config.LoggingConfig{
				Level:  "warn",
				Format: "text",
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "valid config", mutate: func(*config.Config) {}},
		{name: "branch with slash", mutate: func(c *config.Config) { c.Reference.Branch = "feature/login" }},
		{name: "abbreviated commit", mutate: func(c *config.Config) { c.Reference.Commit = "abc1234" }},
		{name: "latest alone", mutate: func(c *config.Config) { c.Reference.Latest = true }},
		{name: "missing remote", mutate: func(c *config.Config) { c.Remote = " " }, field: "remote"},
		{name: "branch with space", mutate: func(c *config.Config) { c.Reference.Branch = "my branch" }, field: "branch"},
		{name: "tag with dots", mutate: func(c *config.Config) { c.Reference.Tag = "v1..0" }, field: "tag"},
		{name: "symbolic commit", mutate: func(c *config.Config) { c.Reference.Commit = "HEAD" }},
		{name: "commit with control character", mutate: func(c *config.Config) { c.Reference.Commit = "abc\x7f" }, field: "commit"},
		{name: "tag and latest", mutate: func(c *config.Config) {
			c.Reference.Tag = "v1.0.0"
			c.Reference.Latest = true
		}, field: "tag,latest"},
		{name: "bad log level", mutate: func(c *config.Config) { c.Logging.Level = "trace" }, field: "logging.level"},
		{name: "bad log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, field: "logging.format"},
		{name: "verbose and quiet", mutate: func(c *config.Config) {
			c.Logging.Verbose = true
			c.Logging.Quiet = true
		}, field: "logging.verbose,logging.quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := config.Validate(cfg)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected valid config, got: %v", err)
				}
				return
			}

			var errs config.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			if len(errs) != 1 || errs[0].Field != tt.field {
				t.Errorf("expected a single %s error, got: %v", tt.field, errs)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := config.ValidationErrors{
		{Field: "remote", Message: "remote name is required"},
		{Field: "commit", Message: "bad"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "remote name is required") || !strings.Contains(msg, "commit: bad") {
		t.Errorf("unexpected aggregated message: %s", msg)
	}
	if config.ValidationErrors(nil).Error() != "" {
		t.Error("empty ValidationErrors should render as an empty string")
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantLevel string
	}{
		{name: "empty", cfg: config.Config{}, wantLevel: "warn"},
		{name: "explicit level", cfg: config.Config{Logging: config.LoggingConfig{Level: "info"}}, wantLevel: "info"},
		{name: "verbose", cfg: config.Config{Logging: config.LoggingConfig{Level: "info", Verbose: true}}, wantLevel: "debug"},
		{name: "quiet", cfg: config.Config{Logging: config.LoggingConfig{Quiet: true}}, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := config.ApplyDefaults(&cfg); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Remote != config.DefaultRemote {
				t.Errorf("expected remote %s, got %s", config.DefaultRemote, cfg.Remote)
			}
			if cfg.Logging.Format != config.DefaultLogFormat {
				t.Errorf("expected format %s, got %s", config.DefaultLogFormat, cfg.Logging.Format)
			}
			if cfg.Logging.Level != tt.wantLevel {
				t.Errorf("expected level %s, got %s", tt.wantLevel, cfg.Logging.Level)
			}
		})
	}

	if err := config.ApplyDefaults(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
