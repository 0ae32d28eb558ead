package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"

	"github.com/goliatone/gitweb/internal/launcher"
	"github.com/goliatone/gitweb/internal/repository"
	"github.com/goliatone/gitweb/pkg/config"
	"github.com/goliatone/gitweb/pkg/gitutil"
	"github.com/goliatone/gitweb/pkg/provider"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "not in repository", err: &repository.DiscoverError{Dir: ".", Err: errors.New("x")}, want: ExitNotInAGitRepository},
		{name: "no remote matching", err: &repository.NoRemoteMatchingError{Name: "origin"}, want: ExitNoRemoteMatching},
		{name: "no remote available", err: fmt.Errorf("remote %q: %w", "origin", repository.ErrNoRemoteAvailable), want: ExitNoRemoteAvailable},
		{name: "system browser", err: fmt.Errorf("%w: exit 1", launcher.ErrNotAbleToOpenSystemBrowser), want: ExitNotAbleToOpenSystemBrowser},
		{name: "browser not available", err: &launcher.BrowserNotAvailableError{Command: "nope"}, want: ExitBrowserNotAvailable},
		{name: "remote parts", err: fmt.Errorf("%w: %q", gitutil.ErrUnableToGetRemoteParts, "x"), want: ExitUnableToGetRemoteParts},
		{name: "unknown provider", err: &provider.UnknownProviderError{Host: "host.xz", View: provider.MergeRequests}, want: ExitUnknownProvider},
		{name: "no semver tags", err: repository.ErrNoSemverTags, want: ExitConfigError},
		{name: "file error", err: &config.FileError{Path: "x", Err: errors.New("bad")}, want: ExitConfigError},
		{name: "validation errors", err: config.ValidationErrors{{Field: "remote"}}, want: ExitConfigError},
		{name: "generic", err: errors.New("boom"), want: ExitGenericError},
		{name: "cli error keeps its code", err: newConfigError("bad flags", errors.New("boom")), want: ExitConfigError},
		{name: "classified cli error", err: classify("open", &repository.NoRemoteMatchingError{Name: "x"}), want: ExitNoRemoteMatching},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCLIError(t *testing.T) {
	cause := repository.ErrNoRemoteAvailable
	err := classify("failed to read remote", cause)

	if err.Error() != "failed to read remote: "+cause.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, repository.ErrNoRemoteAvailable) {
		t.Error("CLIError should unwrap to its cause")
	}

	bare := &CLIError{Code: ExitGenericError, Message: "boom"}
	if bare.Error() != "boom" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestReportError(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	reportError(&buf, classify("failed to read remote", &repository.NoRemoteMatchingError{Name: "upstream"}))

	want := "gitweb: failed to read remote\n  Cause: repository: no remote matching \"upstream\"\n"
	if buf.String() != want {
		t.Errorf("reportError() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	reportError(&buf, errors.New("boom"))
	if buf.String() != "gitweb: boom\n" {
		t.Errorf("reportError() = %q", buf.String())
	}
}
