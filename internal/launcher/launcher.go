package launcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/browser"
)

// EnvBrowser names the environment variable consulted when no explicit
// browser command is given.
const EnvBrowser = "BROWSER"

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Launcher opens URLs in a web browser.
type Launcher interface {
	// Launch opens url with command, falling back to $BROWSER and then the
	// system default browser when command is empty.
	Launch(command, url string) error
}

// Option customises a launcher.
type Option func(*launcher)

// WithEnv overrides environment lookups, primarily for tests.
func WithEnv(getenv func(string) string) Option {
	return func(l *launcher) { l.getenv = getenv }
}

// WithStarter overrides how browser commands are spawned.
func WithStarter(start func(name string, args ...string) error) Option {
	return func(l *launcher) { l.start = start }
}

// WithSystemOpener overrides the OS default opener.
func WithSystemOpener(open func(url string) error) Option {
	return func(l *launcher) { l.openSystem = open }
}

type launcher struct {
	getenv     func(string) string
	start      func(name string, args ...string) error
	openSystem func(url string) error
	logger     Logger
}

// New creates a Launcher. logger may be nil.
func New(logger Logger, opts ...Option) Launcher {
	l := &launcher{
		getenv:     os.Getenv,
		start:      startDetached,
		openSystem: openSystemBrowser,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *launcher) Launch(command, url string) error {
	if command != "" {
		l.debug("browser given as option", "browser", command)
		return l.launchCommand(command, url)
	}

	if env := l.getenv(EnvBrowser); env != "" {
		l.debug("browser given by environment", "variable", EnvBrowser, "browser", env)
		return l.launchCommand(env, url)
	}

	l.debug("opening default system browser")
	if err := l.openSystem(url); err != nil {
		return fmt.Errorf("%w: %v", ErrNotAbleToOpenSystemBrowser, err)
	}
	l.debug("default browser is now open")
	return nil
}

func (l *launcher) launchCommand(command, url string) error {
	if err := l.start(command, url); err != nil {
		return &BrowserNotAvailableError{Command: command, Err: err}
	}
	return nil
}

func (l *launcher) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

// startDetached spawns the browser without waiting for it to exit.
func startDetached(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func openSystemBrowser(url string) error {
	// browser output would interleave with ours
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}
