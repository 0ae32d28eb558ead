package gitutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	giturls "github.com/whilp/git-urls"
)

// ErrUnableToGetRemoteParts is returned when a remote URL matches none of
// the supported syntaxes.
var ErrUnableToGetRemoteParts = errors.New("unable to get remote parts")

// Parse converts a git remote URL into its host and repository path.
// Handles the following formats:
//   - git@github.com:user/repo.git (scp-like)
//   - ssh://[user@]host[:port]/path/to/repo.git[/]
//   - http(s)://host[:port]/path/to/repo.git[/]
//   - any other scheme://host/path URI (git://, git+ssh://)
//
// A URL without a recognisable domain yields DefaultHost. A URL without a
// path yields an empty Path; neither case is an error.
func Parse(remote string) (RemoteLocation, error) {
	remote = strings.TrimSpace(remote)

	protocol, err := detectProtocol(remote)
	if err != nil {
		return RemoteLocation{}, err
	}

	u, err := splitURL(remote, protocol)
	if err != nil {
		return RemoteLocation{}, fmt.Errorf("%w: %q: %v", ErrUnableToGetRemoteParts, remote, err)
	}

	host := u.Hostname()
	if host == "" {
		host = DefaultHost
	}

	return RemoteLocation{
		Host:     host,
		Path:     cleanPath(u.Path),
		Protocol: protocol,
	}, nil
}

// detectProtocol looks for a scheme marker or the scp-like user@host:
// marker. giturls treats anything else as a local path, which is not a
// remote we can browse.
func detectProtocol(remote string) (Protocol, error) {
	if idx := strings.Index(remote, "://"); idx > 0 {
		return protocolFor(strings.ToLower(remote[:idx])), nil
	}

	if isSCPLike(remote) {
		return ProtocolSCP, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnableToGetRemoteParts, remote)
}

func protocolFor(scheme string) Protocol {
	switch scheme {
	case "ssh", "git+ssh", "ssh+git":
		return ProtocolSSH
	case "https":
		return ProtocolHTTPS
	case "http":
		return ProtocolHTTP
	case "git":
		return ProtocolGit
	default:
		return Protocol(scheme)
	}
}

// isSCPLike reports whether remote carries the user@host: marker.
func isSCPLike(remote string) bool {
	at := strings.Index(remote, "@")
	if at <= 0 {
		return false
	}
	colon := strings.Index(remote[at+1:], ":")
	if colon <= 0 {
		return false
	}
	host := remote[at+1 : at+1+colon]
	return !strings.Contains(host, "/")
}

// splitURL separates host and path with giturls. Credentials and ports end
// up in u.User and u.Host, so callers only read Hostname and Path.
func splitURL(remote string, protocol Protocol) (*url.URL, error) {
	if protocol != ProtocolSCP {
		u, err := giturls.ParseTransport(remote)
		if err != nil {
			// giturls only knows a fixed set of transports; other
			// schemes still have a host and a path.
			return url.Parse(remote)
		}
		return u, nil
	}

	// The scp grammar in giturls stops at characters such as ':' or '@'
	// in the path and moves the rest into RawQuery. Those remotes are
	// retried as the equivalent ssh:// URI.
	if u, err := giturls.ParseScp(remote); err == nil && u.RawQuery == "" {
		return u, nil
	}
	return giturls.ParseTransport(scpToURI(remote))
}

// scpToURI rewrites user@host:path as ssh://user@host/path.
func scpToURI(remote string) string {
	at := strings.Index(remote, "@")
	colon := at + 1 + strings.Index(remote[at+1:], ":")
	return "ssh://" + remote[:colon] + "/" + remote[colon+1:]
}

// cleanPath trims slashes and the .git suffix, then drops a leading stray
// port segment such as ":22" left over from an ambiguous host split.
func cleanPath(path string) string {
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	first, remainder, _ := strings.Cut(path, "/")
	if isPortMarker(first) {
		path = strings.Trim(remainder, "/")
	}

	return path
}

// isPortMarker matches a colon followed by 1 to 5 digits.
func isPortMarker(segment string) bool {
	if len(segment) < 2 || len(segment) > 6 || segment[0] != ':' {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if !isDigit(segment[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
