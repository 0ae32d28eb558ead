package provider_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/gitweb/pkg/provider"
)

func TestFor(t *testing.T) {
	tests := []struct {
		host string
		want provider.Provider
	}{
		{host: "github.com", want: provider.Provider{Kind: provider.GitHub, Host: "github.com"}},
		{host: "gitlab.com", want: provider.Provider{Kind: provider.GitLab, Host: "gitlab.com"}},
		{host: "bitbucket.org", want: provider.Provider{Kind: provider.Bitbucket, Host: "bitbucket.org"}},
		{host: "gitea.io", want: provider.Provider{Kind: provider.Gitea, Host: "gitea.io"}},
		{host: "host.xz", want: provider.Provider{Kind: provider.Unknown, Host: "host.xz"}},
		// exact match only, self-hosted instances are not recognised
		{host: "gitlab.example.com", want: provider.Provider{Kind: provider.Unknown, Host: "gitlab.example.com"}},
		{host: "GitHub.com", want: provider.Provider{Kind: provider.Unknown, Host: "GitHub.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, provider.For(tt.host)); diff != "" {
				t.Errorf("For(%q) mismatch (-want +got):\n%s", tt.host, diff)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		host string
		view provider.ViewKind
		want string
	}{
		{host: "github.com", view: provider.BrowseRef, want: "tree"},
		{host: "github.com", view: provider.BrowseCommit, want: "commit"},
		{host: "github.com", view: provider.MergeRequests, want: "pulls"},
		{host: "gitlab.com", view: provider.BrowseRef, want: "tree"},
		{host: "gitlab.com", view: provider.BrowseCommit, want: "commit"},
		{host: "gitlab.com", view: provider.MergeRequests, want: "-/merge_requests"},
		{host: "bitbucket.org", view: provider.BrowseRef, want: "src"},
		{host: "bitbucket.org", view: provider.BrowseCommit, want: "commits"},
		{host: "bitbucket.org", view: provider.MergeRequests, want: "pull-requests"},
		{host: "gitea.io", view: provider.BrowseRef, want: "tree"},
		{host: "gitea.io", view: provider.BrowseCommit, want: "commit"},
		{host: "gitea.io", view: provider.MergeRequests, want: "pulls"},
		{host: "host.xz", view: provider.BrowseRef, want: "tree"},
		{host: "host.xz", view: provider.BrowseCommit, want: "commit"},
	}

	for _, tt := range tests {
		t.Run(tt.host+"/"+tt.view.String(), func(t *testing.T) {
			got, err := provider.Segment(provider.For(tt.host), tt.view)
			if err != nil {
				t.Fatalf("Segment() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Segment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegment_UnknownMergeRequests(t *testing.T) {
	_, err := provider.SegmentFor("host.xz", provider.MergeRequests)
	if !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("SegmentFor() error = %v, want ErrUnknownProvider", err)
	}

	var unknown *provider.UnknownProviderError
	if !errors.As(err, &unknown) {
		t.Fatalf("SegmentFor() error type = %T, want *UnknownProviderError", err)
	}
	if unknown.Host != "host.xz" || unknown.View != provider.MergeRequests {
		t.Errorf("UnknownProviderError = %+v", unknown)
	}
}

func TestSegment_TotalForBrowseViews(t *testing.T) {
	hosts := append(provider.Hosts(), "host.xz", "", "example.org")
	for _, host := range hosts {
		for _, view := range []provider.ViewKind{provider.BrowseRef, provider.BrowseCommit} {
			if _, err := provider.SegmentFor(host, view); err != nil {
				t.Errorf("SegmentFor(%q, %s) unexpected error: %v", host, view, err)
			}
		}
	}
}

func TestSegment_UnregisteredKindFallsBack(t *testing.T) {
	got, err := provider.Segment(provider.Provider{Kind: provider.Kind("sourcehut"), Host: "git.sr.ht"}, provider.BrowseRef)
	if err != nil {
		t.Fatalf("Segment() unexpected error: %v", err)
	}
	if got != "tree" {
		t.Errorf("Segment() = %q, want tree", got)
	}
}

func TestHosts(t *testing.T) {
	want := []string{"bitbucket.org", "gitea.io", "github.com", "gitlab.com"}
	if diff := cmp.Diff(want, provider.Hosts()); diff != "" {
		t.Errorf("Hosts() mismatch (-want +got):\n%s", diff)
	}
}

func TestProvider_Known(t *testing.T) {
	if !provider.For("gitea.io").Known() {
		t.Error("gitea.io should be known")
	}
	if provider.For("host.xz").Known() {
		t.Error("host.xz should not be known")
	}
}
