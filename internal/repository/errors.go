package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInAGitRepository is returned when no repository encloses the
	// starting directory.
	ErrNotInAGitRepository = errors.New("not in a git repository")

	// ErrNoRemoteMatching is matched by NoRemoteMatchingError.
	ErrNoRemoteMatching = errors.New("no remote matching")

	// ErrNoRemoteAvailable is returned when a remote exists but has no URL.
	ErrNoRemoteAvailable = errors.New("no remote url available")

	// ErrNoSemverTags is returned when a latest tag is requested but no tag
	// parses as a semantic version.
	ErrNoSemverTags = errors.New("no semantic version tags")
)

// DiscoverError wraps the failure to open a repository from Dir.
type DiscoverError struct {
	Dir string
	Err error
}

func (e *DiscoverError) Error() string {
	return fmt.Sprintf("repository: %s: %s: %v", ErrNotInAGitRepository, e.Dir, e.Err)
}

func (e *DiscoverError) Unwrap() error {
	return e.Err
}

func (e *DiscoverError) Is(target error) bool {
	return target == ErrNotInAGitRepository
}

// NoRemoteMatchingError reports a remote name the repository does not have.
type NoRemoteMatchingError struct {
	Name string
}

func (e *NoRemoteMatchingError) Error() string {
	return fmt.Sprintf("repository: no remote matching %q", e.Name)
}

func (e *NoRemoteMatchingError) Is(target error) bool {
	return target == ErrNoRemoteMatching
}
