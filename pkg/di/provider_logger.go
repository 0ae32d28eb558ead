package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/gitweb/pkg/config"
)

// provideLogger creates a default structured logger implementation.
// Diagnostics go to stderr so stdout only ever carries the URL.
func provideLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &slogAdapter{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
}

// provideLoggerWithConfig creates a logger configured from the logging config.
// Respects log level, format (text/json), verbose, and quiet settings.
func provideLoggerWithConfig(cfg *config.Config, w io.Writer) Logger {
	if cfg == nil {
		return provideLogger(w)
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: levelFor(cfg.Logging)}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &slogAdapter{
		logger: slog.New(handler),
	}
}

func levelFor(cfg config.LoggingConfig) slog.Level {
	if cfg.Quiet {
		return slog.LevelError
	}
	if cfg.Verbose {
		return slog.LevelDebug
	}

	switch cfg.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// slogAdapter adapts slog.Logger to implement our Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *slogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *slogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *slogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}
