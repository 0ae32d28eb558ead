package gitutil

// Protocol represents the syntax a remote URL was written in.
type Protocol string

const (
	// ProtocolSCP is the scp-like user@host:path form
	ProtocolSCP Protocol = "scp"
	// ProtocolSSH represents ssh:// (and git+ssh://) URIs
	ProtocolSSH Protocol = "ssh"
	// ProtocolHTTPS represents https:// URIs
	ProtocolHTTPS Protocol = "https"
	// ProtocolHTTP represents http:// URIs
	ProtocolHTTP Protocol = "http"
	// ProtocolGit represents the git:// daemon protocol
	ProtocolGit Protocol = "git"
)

// DefaultHost is used when a remote URL carries no recognisable domain.
const DefaultHost = "github.com"

// RemoteLocation is the canonical form of a git remote URL.
type RemoteLocation struct {
	// Host is the hosting domain without port (e.g., github.com, gitlab.com).
	// Never empty.
	Host string

	// Path is the repository path below the host, e.g. group/subgroup/repo.
	// It has no leading or trailing slash and no .git suffix.
	Path string

	// Protocol is the syntax the original URL used
	Protocol Protocol
}

// String returns host/path.
func (l RemoteLocation) String() string {
	if l.Path == "" {
		return l.Host
	}
	return l.Host + "/" + l.Path
}
