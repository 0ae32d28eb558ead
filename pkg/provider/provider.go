package provider

import (
	"errors"
	"fmt"
	"sort"
)

// Kind identifies a git hosting service.
type Kind string

const (
	GitHub    Kind = "github"
	GitLab    Kind = "gitlab"
	Bitbucket Kind = "bitbucket"
	Gitea     Kind = "gitea"
	Unknown   Kind = "unknown"
)

// ViewKind selects which page of a repository a URL points at.
type ViewKind int

const (
	// BrowseRef shows the tree at a branch or tag.
	BrowseRef ViewKind = iota
	// BrowseCommit shows a single commit.
	BrowseCommit
	// MergeRequests lists open pull/merge requests.
	MergeRequests
)

func (v ViewKind) String() string {
	switch v {
	case BrowseRef:
		return "browse-ref"
	case BrowseCommit:
		return "browse-commit"
	case MergeRequests:
		return "merge-requests"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ErrUnknownProvider is matched by UnknownProviderError.
var ErrUnknownProvider = errors.New("unknown provider")

// UnknownProviderError reports a view that has no safe default on an
// unrecognised host.
type UnknownProviderError struct {
	Host string
	View ViewKind
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("provider: %s is not a known provider, cannot build %s url", e.Host, e.View)
}

func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrUnknownProvider
}

// Provider is a hosting service resolved from a host name.
type Provider struct {
	Kind Kind
	Host string
}

// hosts maps recognised host names to their provider.
var hosts = map[string]Kind{
	"github.com":    GitHub,
	"gitlab.com":    GitLab,
	"bitbucket.org": Bitbucket,
	"gitea.io":      Gitea,
}

// segments holds the path segment of every view per provider. A missing
// entry means the view is unsupported. Adding a provider only requires a
// row here and a host above.
//
// Unknown hosts intentionally default to GitHub conventions for browse and
// commit views instead of failing; merge requests have no safe default.
var segments = map[Kind]map[ViewKind]string{
	GitHub: {
		BrowseRef:     "tree",
		BrowseCommit:  "commit",
		MergeRequests: "pulls",
	},
	GitLab: {
		BrowseRef:     "tree",
		BrowseCommit:  "commit",
		MergeRequests: "-/merge_requests",
	},
	Bitbucket: {
		BrowseRef:     "src",
		BrowseCommit:  "commits",
		MergeRequests: "pull-requests",
	},
	Gitea: {
		BrowseRef:     "tree",
		BrowseCommit:  "commit",
		MergeRequests: "pulls",
	},
	Unknown: {
		BrowseRef:    "tree",
		BrowseCommit: "commit",
	},
}

// For resolves the provider of host by exact match.
func For(host string) Provider {
	if kind, ok := hosts[host]; ok {
		return Provider{Kind: kind, Host: host}
	}
	return Provider{Kind: Unknown, Host: host}
}

// Known reports whether p is one of the recognised providers.
func (p Provider) Known() bool {
	return p.Kind != Unknown && p.Kind != ""
}

// Segment returns the URL path segment p uses for view.
func Segment(p Provider, view ViewKind) (string, error) {
	table, ok := segments[p.Kind]
	if !ok {
		table = segments[Unknown]
	}

	segment, ok := table[view]
	if !ok {
		return "", &UnknownProviderError{Host: p.Host, View: view}
	}
	return segment, nil
}

// SegmentFor is shorthand for Segment(For(host), view).
func SegmentFor(host string, view ViewKind) (string, error) {
	return Segment(For(host), view)
}

// Hosts returns the recognised host names in sorted order.
func Hosts() []string {
	names := make([]string, 0, len(hosts))
	for host := range hosts {
		names = append(names, host)
	}
	sort.Strings(names)
	return names
}
