package di

import (
	"fmt"
	"io"
	"time"

	"github.com/goliatone/gitweb/internal/browse"
	"github.com/goliatone/gitweb/internal/launcher"
	"github.com/goliatone/gitweb/pkg/config"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Repository is the subset of a local git repository the CLI reads.
type Repository interface {
	CurrentBranch() string
	RemoteURL(name string) (string, error)
	LatestTag() (string, error)
}

// RepositoryOpener discovers the repository enclosing dir.
type RepositoryOpener func(dir string) (Repository, error)

// URLBuilder turns a browse request into a provider web URL.
type URLBuilder interface {
	URL(req browse.Request) (string, error)
}

// Container exposes resolved dependencies for the CLI orchestration layer.
// All methods return interfaces to prevent leaking concrete implementations.
type Container interface {
	// Core service accessors
	URLBuilder() URLBuilder
	Launcher() launcher.Launcher
	OpenRepository(dir string) (Repository, error)

	// Configuration and infrastructure
	Config() *config.Config
	Logger() Logger

	// Resource management
	Close() error
}

// Option customises container construction using the functional options pattern.
// Options allow overriding default dependencies for testing and customization.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided options.
// It returns an error if required dependencies are missing or if any option fails.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	cfg *config.Config

	enableInstrumentation bool

	logger    Logger
	logOutput io.Writer

	urlBuilder       URLBuilder
	launcher         launcher.Launcher
	repositoryOpener RepositoryOpener
}

// container implements the Container interface with concrete dependencies.
type container struct {
	cfg              *config.Config
	logger           Logger
	urlBuilder       URLBuilder
	launcher         launcher.Launcher
	repositoryOpener RepositoryOpener
}

func (c *container) URLBuilder() URLBuilder      { return c.urlBuilder }
func (c *container) Launcher() launcher.Launcher { return c.launcher }

func (c *container) OpenRepository(dir string) (Repository, error) {
	return c.repositoryOpener(dir)
}

func (c *container) Config() *config.Config { return c.cfg }
func (c *container) Logger() Logger         { return c.logger }

// Close releases resources held by services that implement io.Closer.
func (c *container) Close() error {
	var errs []error

	if closer, ok := c.launcher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("launcher close: %w", err))
		}
	}

	if closer, ok := c.urlBuilder.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("url builder close: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}

// build assembles the container, filling every dependency not supplied
// through an option with its default implementation.
func (b *builder) build() (Container, error) {
	start := time.Now()

	// Configuration must be resolved first as other services depend on it
	if b.cfg == nil {
		var err error
		b.cfg, err = provideConfigWithDefaults()
		if err != nil {
			return nil, fmt.Errorf("di: failed to provide default config: %w", err)
		}
	}

	if b.logger == nil {
		b.logger = provideLoggerWithConfig(b.cfg, b.logOutput)
	}

	if b.urlBuilder == nil {
		b.urlBuilder = provideURLBuilder(b.logger)
	}

	if b.launcher == nil {
		b.launcher = provideLauncher(b.logger)
	}

	if b.repositoryOpener == nil {
		b.repositoryOpener = provideRepositoryOpener(b.logger)
	}

	c := &container{
		cfg:              b.cfg,
		logger:           b.logger,
		urlBuilder:       b.urlBuilder,
		launcher:         b.launcher,
		repositoryOpener: b.repositoryOpener,
	}

	if b.enableInstrumentation {
		b.logger.Debug("DI container created",
			"duration_ms", time.Since(start).Milliseconds(),
			"log_level", b.cfg.Logging.Level,
			"log_format", b.cfg.Logging.Format,
		)
	}

	return c, nil
}

// Configuration options

// WithConfig injects an explicit configuration object into the container.
// If not provided, the container uses built-in defaults.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger injects a custom logger into the container.
func WithLogger(logger Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// WithLogOutput redirects the default logger, which writes to stderr.
// It has no effect when WithLogger is also used.
func WithLogOutput(w io.Writer) Option {
	return func(b *builder) error {
		if w == nil {
			return fmt.Errorf("log output cannot be nil")
		}
		b.logOutput = w
		return nil
	}
}

// Core service override options for testing

// WithURLBuilder injects a custom URL builder implementation.
func WithURLBuilder(ub URLBuilder) Option {
	return func(b *builder) error {
		if ub == nil {
			return fmt.Errorf("url builder cannot be nil")
		}
		b.urlBuilder = ub
		return nil
	}
}

// WithLauncher injects a custom browser launcher implementation.
func WithLauncher(l launcher.Launcher) Option {
	return func(b *builder) error {
		if l == nil {
			return fmt.Errorf("launcher cannot be nil")
		}
		b.launcher = l
		return nil
	}
}

// WithRepositoryOpener injects a custom repository discovery function.
func WithRepositoryOpener(open RepositoryOpener) Option {
	return func(b *builder) error {
		if open == nil {
			return fmt.Errorf("repository opener cannot be nil")
		}
		b.repositoryOpener = open
		return nil
	}
}

// Build options

// WithInstrumentation logs container construction details at debug level.
func WithInstrumentation() Option {
	return func(b *builder) error {
		b.enableInstrumentation = true
		return nil
	}
}
