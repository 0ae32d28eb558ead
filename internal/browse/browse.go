package browse

import (
	"github.com/goliatone/gitweb/pkg/gitutil"
	"github.com/goliatone/gitweb/pkg/provider"
)

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Request describes the page to build a URL for.
type Request struct {
	// RemoteURL is the raw URL configured on the git remote.
	RemoteURL string

	// Reference is the resolved branch, tag or commit.
	Reference Reference

	// MergeRequests asks for the pull/merge request listing instead of
	// the reference. It takes precedence over Reference.
	MergeRequests bool
}

// Builder turns remote URLs and references into provider web URLs.
type Builder struct {
	logger Logger
}

// NewBuilder creates a Builder. logger may be nil.
func NewBuilder(logger Logger) *Builder {
	return &Builder{logger: logger}
}

// URL runs the full pipeline: parse the remote, resolve the provider, pick
// the view and format the URL. The first error is returned unchanged; it is
// either gitutil.ErrUnableToGetRemoteParts or provider.ErrUnknownProvider.
func (b *Builder) URL(req Request) (string, error) {
	location, err := gitutil.Parse(req.RemoteURL)
	if err != nil {
		return "", err
	}
	b.debug("parsed remote", "host", location.Host, "path", location.Path, "protocol", location.Protocol)

	p := provider.For(location.Host)
	if !p.Known() {
		b.debug("host is not a known provider, using default conventions",
			"host", location.Host, "known", provider.Hosts())
	}

	view := SelectView(req.Reference, req.MergeRequests)
	segment, err := provider.Segment(p, view)
	if err != nil {
		return "", err
	}

	tail := req.Reference.Name
	if view == provider.MergeRequests {
		tail = ""
	}

	url := BuildURL(location.Host, location.Path, segment, tail)
	b.debug("built url", "provider", p.Kind, "view", view, "url", url)

	return url, nil
}

// SelectView maps the request flags to a provider view.
func SelectView(ref Reference, mergeRequests bool) provider.ViewKind {
	switch {
	case mergeRequests:
		return provider.MergeRequests
	case ref.Kind == RefCommit:
		return provider.BrowseCommit
	default:
		return provider.BrowseRef
	}
}

func (b *Builder) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}
