package repository

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is reported when the current branch cannot be read.
const DefaultBranch = "master"

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Repository is a discovered local git repository.
type Repository struct {
	repo   *git.Repository
	logger Logger
}

// Discover opens the repository enclosing dir, walking up parent
// directories until a .git entry is found.
func Discover(dir string, logger Logger) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if logger != nil {
			logger.Debug("repository discovery failed", "dir", dir, "error", err)
		}
		return nil, &DiscoverError{Dir: dir, Err: err}
	}

	return &Repository{repo: repo, logger: logger}, nil
}

// CurrentBranch returns the short name HEAD points at. Any failure, such as
// an unborn HEAD in a fresh repository, yields DefaultBranch instead of an
// error. A detached HEAD is reported as "HEAD".
func (r *Repository) CurrentBranch() string {
	head, err := r.repo.Head()
	if err != nil {
		r.debug("not currently on any branch", "error", err, "fallback", DefaultBranch)
		return DefaultBranch
	}

	name := head.Name().Short()
	r.debug("on branch", "branch", name)
	return name
}

// RemoteURL returns the first URL configured for the named remote.
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if !errors.Is(err, git.ErrRemoteNotFound) {
			r.debug("remote lookup failed", "remote", name, "error", err)
		}
		return "", &NoRemoteMatchingError{Name: name}
	}

	url, err := firstURL(remote.Config().URLs)
	if err != nil {
		return "", fmt.Errorf("remote %q: %w", name, err)
	}

	r.debug("resolved remote", "remote", name, "url", url)
	return url, nil
}

func firstURL(urls []string) (string, error) {
	for _, url := range urls {
		if url != "" {
			return url, nil
		}
	}
	return "", ErrNoRemoteAvailable
}

// LatestTag returns the tag with the highest semantic version. Tags that
// do not parse as versions are ignored.
func (r *Repository) LatestTag() (string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return "", fmt.Errorf("list tags: %w", err)
	}
	defer iter.Close()

	names := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("list tags: %w", err)
	}

	latest, ok := highestVersion(names)
	if !ok {
		return "", ErrNoSemverTags
	}

	r.debug("resolved latest tag", "tag", latest, "candidates", len(names))
	return latest, nil
}

// highestVersion picks the name with the greatest semantic version.
func highestVersion(names []string) (string, bool) {
	var (
		best    *semver.Version
		bestTag string
	)

	for _, name := range names {
		v, err := semver.NewVersion(name)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best, bestTag = v, name
		}
	}

	return bestTag, best != nil
}

func (r *Repository) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
