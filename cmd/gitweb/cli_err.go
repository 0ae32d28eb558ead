package main

import (
	"errors"
	"fmt"

	"github.com/goliatone/gitweb/internal/launcher"
	"github.com/goliatone/gitweb/internal/repository"
	"github.com/goliatone/gitweb/pkg/config"
	"github.com/goliatone/gitweb/pkg/gitutil"
	"github.com/goliatone/gitweb/pkg/provider"
)

// Error types for structured error handling
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) ExitCode() int {
	return e.Code
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// Error creation helpers for structured error handling

func newConfigError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitConfigError, Message: message, Cause: cause}
}

func newGenericError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitGenericError, Message: message, Cause: cause}
}

// classify wraps cause in a CLIError whose code is derived from the
// domain error it carries.
func classify(message string, cause error) *CLIError {
	return &CLIError{Code: codeFor(cause), Message: message, Cause: cause}
}

// exitCodeFor returns the process exit code for err.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode()
	}
	return codeFor(err)
}

func codeFor(err error) int {
	var (
		fileErr       *config.FileError
		validationErr *config.ValidationError
		validationSet config.ValidationErrors
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, repository.ErrNotInAGitRepository):
		return ExitNotInAGitRepository
	case errors.Is(err, repository.ErrNoRemoteMatching):
		return ExitNoRemoteMatching
	case errors.Is(err, repository.ErrNoRemoteAvailable):
		return ExitNoRemoteAvailable
	case errors.Is(err, launcher.ErrNotAbleToOpenSystemBrowser):
		return ExitNotAbleToOpenSystemBrowser
	case errors.Is(err, launcher.ErrBrowserNotAvailable):
		return ExitBrowserNotAvailable
	case errors.Is(err, gitutil.ErrUnableToGetRemoteParts):
		return ExitUnableToGetRemoteParts
	case errors.Is(err, provider.ErrUnknownProvider):
		return ExitUnknownProvider
	case errors.Is(err, repository.ErrNoSemverTags),
		errors.As(err, &fileErr),
		errors.As(err, &validationErr),
		errors.As(err, &validationSet):
		return ExitConfigError
	default:
		return ExitGenericError
	}
}
