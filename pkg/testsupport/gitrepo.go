// Package testsupport builds throwaway git repositories for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a repository initialised in a temporary directory.
type GitRepo struct {
	t    testing.TB
	Dir  string
	Repo *git.Repository
}

// NewGitRepo initialises an empty repository with an unborn HEAD.
func NewGitRepo(t testing.TB) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	return &GitRepo{t: t, Dir: dir, Repo: repo}
}

// Commit writes name into the worktree and commits it.
func (g *GitRepo) Commit(name string) plumbing.Hash {
	g.t.Helper()

	if err := os.WriteFile(filepath.Join(g.Dir, name), []byte(name+"\n"), 0o644); err != nil {
		g.t.Fatalf("write file: %v", err)
	}

	wt := g.worktree()
	if _, err := wt.Add(name); err != nil {
		g.t.Fatalf("add: %v", err)
	}

	hash, err := wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		g.t.Fatalf("commit: %v", err)
	}
	return hash
}

// Checkout creates branch at HEAD and switches to it.
func (g *GitRepo) Checkout(branch string) {
	g.t.Helper()

	err := g.worktree().Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	if err != nil {
		g.t.Fatalf("checkout %s: %v", branch, err)
	}
}

// AddRemote registers a remote with the given fetch URLs.
func (g *GitRepo) AddRemote(name string, urls ...string) {
	g.t.Helper()

	_, err := g.Repo.CreateRemote(&gitconfig.RemoteConfig{Name: name, URLs: urls})
	if err != nil {
		g.t.Fatalf("create remote %s: %v", name, err)
	}
}

// AppendConfig appends raw text to .git/config. It covers entries that
// CreateRemote refuses, such as a remote without a url.
func (g *GitRepo) AppendConfig(text string) {
	g.t.Helper()

	f, err := os.OpenFile(filepath.Join(g.Dir, ".git", "config"), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		g.t.Fatalf("open config: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		g.t.Fatalf("append config: %v", err)
	}
}

// Tag creates lightweight tags pointing at hash.
func (g *GitRepo) Tag(hash plumbing.Hash, names ...string) {
	g.t.Helper()

	for _, name := range names {
		if _, err := g.Repo.CreateTag(name, hash, nil); err != nil {
			g.t.Fatalf("create tag %s: %v", name, err)
		}
	}
}

// Subdir creates a nested directory inside the worktree and returns it.
func (g *GitRepo) Subdir(parts ...string) string {
	g.t.Helper()

	dir := filepath.Join(append([]string{g.Dir}, parts...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		g.t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func (g *GitRepo) worktree() *git.Worktree {
	g.t.Helper()

	wt, err := g.Repo.Worktree()
	if err != nil {
		g.t.Fatalf("worktree: %v", err)
	}
	return wt
}
