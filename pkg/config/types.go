package config

// Config represents the complete configuration for a gitweb invocation.
// Persistent settings (remote, browser, logging) can come from the config
// file and environment; the reference selection only comes from flags.
type Config struct {
	// Remote is the git remote whose URL is browsed.
	// Default: origin
	Remote string `json:"remote" yaml:"remote"`

	// Browser is the command used to open the URL. An explicitly empty
	// value means the URL is printed instead of opened; an unset value
	// falls back to $BROWSER and then the system default browser.
	Browser string `json:"browser,omitempty" yaml:"browser,omitempty"`

	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Reference selects what to browse
	Reference ReferenceConfig `json:"-" yaml:"-"`

	// MergeRequest opens the pull/merge request listing instead of a
	// reference.
	MergeRequest bool `json:"-" yaml:"-"`

	setFlags setFlags `json:"-" yaml:"-"`
}

type setFlags struct {
	browser        bool
	loggingVerbose bool
	loggingQuiet   bool
}

// ReferenceConfig holds the explicitly requested reference. Commit takes
// precedence over Tag/Latest, which take precedence over Branch.
type ReferenceConfig struct {
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`

	// Latest selects the highest semantic version tag
	Latest bool `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// LoggingConfig manages logging level and output format.
type LoggingConfig struct {
	// Level controls the logging verbosity level.
	// Valid values: debug, info, warn, error
	// Default: warn
	Level string `json:"level" yaml:"level"`

	// Format controls the log output format.
	// Valid values: text, json
	// Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose is equivalent to setting Level to "debug"
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet is equivalent to setting Level to "error"
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// Environment variable mapping constants for configuration parsing
const (
	EnvConfigFile = "GITWEB_CONFIG"
	EnvRemote     = "GITWEB_REMOTE"
	EnvBrowser    = "GITWEB_BROWSER"

	EnvLogLevel  = "GITWEB_LOG_LEVEL"
	EnvLogFormat = "GITWEB_LOG_FORMAT"
	EnvVerbose   = "GITWEB_VERBOSE"
	EnvQuiet     = "GITWEB_QUIET"
)

// New returns a Config populated with safe zero values.
func New() *Config {
	return &Config{}
}

// PrintOnly reports whether the URL should be written to stdout instead of
// opened, which is the case when the browser was explicitly set to "".
func (c *Config) PrintOnly() bool {
	return c != nil && c.setFlags.browser && c.Browser == ""
}
