package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagConfig represents flag parsing configuration and results
type FlagConfig struct {
	// Reference selection
	Branch string
	Tag    string
	Latest bool
	Commit string

	MergeRequest bool

	Remote     string
	Browser    string
	ConfigFile string

	// Logging flags
	Verbose   bool
	Quiet     bool
	LogLevel  string
	LogFormat string

	browserSet   bool
	verboseSet   bool
	quietSet     bool
	logLevelSet  bool
	logFormatSet bool
}

// AddFlags adds all configuration flags to the provided cobra command.
// This function defines all available command-line flags with their
// default values, help text, and validation rules.
func AddFlags(cmd *cobra.Command) *FlagConfig {
	fc := &FlagConfig{}

	cmd.Flags().StringVarP(&fc.Branch, "branch", "b", "",
		"Branch to browse (default: the current branch, or master if it cannot be detected)")
	cmd.Flags().StringVarP(&fc.Tag, "tag", "t", "",
		"Tag to browse, takes precedence over --branch")
	cmd.Flags().BoolVarP(&fc.Latest, "latest", "l", false,
		"Browse the highest semantic version tag")
	cmd.Flags().StringVarP(&fc.Commit, "commit", "c", "",
		"Commit to browse, takes precedence over --tag and --branch")
	cmd.Flags().BoolVarP(&fc.MergeRequest, "merge-request", "m", false,
		"Open the pull/merge request listing")

	cmd.Flags().StringVarP(&fc.Remote, "remote", "r", "",
		"Remote to browse (default: origin)")
	cmd.Flags().StringVarP(&fc.Browser, "browser", "B", "",
		"Browser command to open the URL with; an empty value prints the URL instead")

	cmd.PersistentFlags().StringVar(&fc.ConfigFile, "config", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/gitweb/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&fc.Verbose, "verbose", "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	cmd.PersistentFlags().BoolVarP(&fc.Quiet, "quiet", "q", false,
		"Only log errors (equivalent to --log-level=error)")
	cmd.PersistentFlags().StringVar(&fc.LogLevel, "log-level", "",
		"Logging level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&fc.LogFormat, "log-format", "",
		"Log output format (text, json)")

	cmd.MarkFlagsMutuallyExclusive("tag", "latest")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return fc
}

// ValidateFlags validates flag combinations and values.
// Returns an error if any validation rules are violated.
func (fc *FlagConfig) ValidateFlags() error {
	var errors []string

	if fc.logLevelSet && !isValidLogLevel(fc.LogLevel) {
		errors = append(errors, fmt.Sprintf("log-level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	if fc.logFormatSet && !isValidLogFormat(fc.LogFormat) {
		errors = append(errors, fmt.Sprintf("log-format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if fc.Verbose && fc.Quiet {
		errors = append(errors, "verbose and quiet cannot be combined")
	}

	if fc.Latest && fc.Tag != "" {
		errors = append(errors, "tag and latest cannot be combined")
	}

	if len(errors) > 0 {
		return fmt.Errorf("flag validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ToConfig converts flag configuration to a Config struct.
// It emits only the values explicitly set via flags; callers should merge
// this result with other configuration sources to honour precedence rules.
func (fc *FlagConfig) ToConfig() (*Config, error) {
	config := New()

	config.Reference = ReferenceConfig{
		Branch: fc.Branch,
		Tag:    fc.Tag,
		Commit: fc.Commit,
		Latest: fc.Latest,
	}
	config.MergeRequest = fc.MergeRequest

	if fc.Remote != "" {
		config.Remote = fc.Remote
	}

	if fc.browserSet {
		config.SetBrowser(fc.Browser)
	}

	if fc.verboseSet {
		config.setLoggingVerbose(fc.Verbose)
		if fc.Verbose {
			config.Logging.Level = "debug"
		}
	}
	if fc.quietSet {
		config.setLoggingQuiet(fc.Quiet)
		if fc.Quiet {
			config.Logging.Level = "error"
		}
	}
	if fc.logLevelSet && fc.LogLevel != "" {
		config.Logging.Level = fc.LogLevel
	}

	if fc.logFormatSet && fc.LogFormat != "" {
		config.Logging.Format = fc.LogFormat
	}

	return config, nil
}

// LoadFromFlags loads configuration from command-line flags using cobra.
// This is the main entry point for flag-based configuration.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	fc := extractFlagConfig(cmd.Flags())

	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}

	return fc.ToConfig()
}

// extractFlagConfig extracts flag values from a flag set into FlagConfig
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed("branch") {
		fc.Branch, _ = flags.GetString("branch")
	}
	if flags.Changed("tag") {
		fc.Tag, _ = flags.GetString("tag")
	}
	if flags.Changed("latest") {
		fc.Latest, _ = flags.GetBool("latest")
	}
	if flags.Changed("commit") {
		fc.Commit, _ = flags.GetString("commit")
	}
	if flags.Changed("merge-request") {
		fc.MergeRequest, _ = flags.GetBool("merge-request")
	}
	if flags.Changed("remote") {
		fc.Remote, _ = flags.GetString("remote")
	}
	if flags.Changed("browser") {
		fc.Browser, _ = flags.GetString("browser")
		fc.browserSet = true
	}
	if flags.Changed("config") {
		fc.ConfigFile, _ = flags.GetString("config")
	}
	if flags.Changed("verbose") {
		fc.Verbose, _ = flags.GetBool("verbose")
		fc.verboseSet = true
	}
	if flags.Changed("quiet") {
		fc.Quiet, _ = flags.GetBool("quiet")
		fc.quietSet = true
	}
	if flags.Changed("log-level") {
		fc.LogLevel, _ = flags.GetString("log-level")
		fc.logLevelSet = true
	}
	if flags.Changed("log-format") {
		fc.LogFormat, _ = flags.GetString("log-format")
		fc.logFormatSet = true
	}

	return fc
}
