package browse

// RefKind tags which kind of reference is being browsed.
type RefKind int

const (
	// RefBranch is a branch name, explicit or detected.
	RefBranch RefKind = iota
	// RefTag is a tag name.
	RefTag
	// RefCommit is a commit identifier.
	RefCommit
)

func (k RefKind) String() string {
	switch k {
	case RefCommit:
		return "commit"
	case RefTag:
		return "tag"
	default:
		return "branch"
	}
}

// Reference is the single reference an invocation browses.
type Reference struct {
	Kind RefKind
	Name string
}

// Commit returns a commit reference.
func Commit(sha string) Reference { return Reference{Kind: RefCommit, Name: sha} }

// Tag returns a tag reference.
func Tag(name string) Reference { return Reference{Kind: RefTag, Name: name} }

// Branch returns a branch reference.
func Branch(name string) Reference { return Reference{Kind: RefBranch, Name: name} }

// Selection carries the explicitly requested references. Empty fields are
// treated as not given.
type Selection struct {
	Commit string
	Tag    string
	Branch string
}

// Resolve picks the reference to browse. Priority, highest first: commit,
// tag, branch, then currentBranch. currentBranch is only invoked when
// nothing was selected explicitly; it is expected to fall back to a default
// branch itself rather than fail.
func Resolve(sel Selection, currentBranch func() string) Reference {
	switch {
	case sel.Commit != "":
		return Commit(sel.Commit)
	case sel.Tag != "":
		return Tag(sel.Tag)
	case sel.Branch != "":
		return Branch(sel.Branch)
	}

	name := DefaultBranch
	if currentBranch != nil {
		name = currentBranch()
	}
	return Branch(name)
}

// DefaultBranch is browsed when the current branch cannot be detected.
const DefaultBranch = "master"
