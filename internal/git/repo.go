package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dongminkim/kk/internal/vcs"
)

// Source discovers repositories with `git rev-parse`.
type Source struct {
	runner *Runner
}

// NewSource creates a git backed status source.
func NewSource() *Source {
	return &Source{runner: NewRunner()}
}

// Discover returns the repository containing path. Paths inside the .git
// directory of a working tree resolve to that working tree.
func (s *Source) Discover(ctx context.Context, path string) (vcs.Repo, error) {
	dir := path
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}

	top, err := s.revParse(ctx, dir, "--show-toplevel")
	if err != nil {
		top, err = s.fromGitDir(ctx, dir, err)
		if err != nil {
			return nil, err
		}
	}

	return &Repo{runner: s.runner, workDir: top}, nil
}

// fromGitDir resolves the working tree of a directory inside a .git
// directory, where git itself refuses to report the top level. Bare
// repositories and linked worktree admin directories stay undiscovered.
func (s *Source) fromGitDir(ctx context.Context, dir string, cause error) (string, error) {
	notRepo := fmt.Errorf("%w: %v", vcs.ErrNotRepository, cause)

	gitDir, err := s.revParse(ctx, dir, "--absolute-git-dir")
	if err != nil {
		return "", notRepo
	}
	candidate := filepath.Dir(gitDir)
	top, err := s.revParse(ctx, candidate, "--show-toplevel")
	if err != nil {
		return "", notRepo
	}
	owner, err := s.revParse(ctx, top, "--absolute-git-dir")
	if err != nil || owner != gitDir {
		return "", notRepo
	}
	return top, nil
}

func (s *Source) revParse(ctx context.Context, dir, arg string) (string, error) {
	out, err := s.runner.Output(ctx, dir, "rev-parse", arg)
	if err != nil {
		return "", err
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", vcs.ErrNotRepository
	}
	return v, nil
}

// Repo is a repository with a working directory.
type Repo struct {
	runner  *Runner
	workDir string
}

// WorkDir returns the top level of the working tree.
func (r *Repo) WorkDir() string {
	return r.workDir
}

// Statuses runs one status query over the whole working tree.
func (r *Repo) Statuses(ctx context.Context) ([]vcs.PathStatus, error) {
	out, err := r.runner.Output(ctx, r.workDir, statusArgs()...)
	if err != nil {
		return nil, err
	}
	return ParsePorcelain(out)
}

// IsPathIgnored reports whether rel matches an ignore rule, whether or not
// it is tracked. Anything inside .git counts as ignored.
func (r *Repo) IsPathIgnored(ctx context.Context, rel string) bool {
	if rel == "" {
		return false
	}
	for _, c := range strings.Split(rel, "/") {
		if c == ".git" {
			return true
		}
	}

	// Directory-only patterns need the trailing slash to match.
	check := rel
	if info, err := os.Lstat(filepath.Join(r.workDir, filepath.FromSlash(rel))); err == nil && info.IsDir() {
		check += "/"
	}

	_, code, err := r.runner.Run(ctx, r.workDir, []int{1}, "check-ignore", "-q", "--no-index", "--", check)
	return err == nil && code == 0
}

// HeadTree returns the tree of HEAD, or nil on an unborn branch.
func (r *Repo) HeadTree(ctx context.Context) (vcs.Tree, error) {
	out, code, err := r.runner.Run(ctx, r.workDir, []int{1}, "rev-parse", "--verify", "-q", "HEAD^{tree}")
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, nil
	}
	treeID := strings.TrimSpace(string(out))

	out, err = r.runner.Output(ctx, r.workDir, "ls-tree", "-r", "-t", "-z", "--full-tree", treeID)
	if err != nil {
		return nil, err
	}
	entries, err := ParseLsTree(out)
	if err != nil {
		return nil, err
	}
	return tree(entries), nil
}

// FileStatus queries the status of a single path. Output for a directory is
// merged into one set of flags; no output means the path is clean.
func (r *Repo) FileStatus(ctx context.Context, rel string) (vcs.Flags, error) {
	out, err := r.runner.Output(ctx, r.workDir, statusArgs(rel)...)
	if err != nil {
		return 0, err
	}
	entries, err := ParsePorcelain(out)
	if err != nil {
		return 0, err
	}
	var flags vcs.Flags
	for _, e := range entries {
		flags |= e.Flags
	}
	return flags, nil
}

// tree is a fully listed HEAD tree.
type tree []vcs.TreeEntry

// Walk visits entries in the pre-order ls-tree produces.
func (t tree) Walk(fn func(vcs.TreeEntry) bool) error {
	for _, e := range t {
		if !fn(e) {
			return nil
		}
	}
	return nil
}
