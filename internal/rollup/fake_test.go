package rollup

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dongminkim/kk/internal/vcs"
)

type fakeSource struct {
	repo *fakeRepo
}

func (s *fakeSource) Discover(context.Context, string) (vcs.Repo, error) {
	if s.repo == nil {
		return nil, vcs.ErrNotRepository
	}
	return s.repo, nil
}

type fakeTree []vcs.TreeEntry

func (t fakeTree) Walk(fn func(vcs.TreeEntry) bool) error {
	for _, e := range t {
		if !fn(e) {
			return nil
		}
	}
	return nil
}

type fakeRepo struct {
	workDir     string
	statuses    []vcs.PathStatus
	statusCalls int
	ignored     map[string]bool
	tree        fakeTree
	fileStatus  map[string]vcs.Flags
	fileQueries []string
}

func (r *fakeRepo) WorkDir() string { return r.workDir }

func (r *fakeRepo) Statuses(context.Context) ([]vcs.PathStatus, error) {
	r.statusCalls++
	return r.statuses, nil
}

// IsPathIgnored treats a path as ignored when it or any parent is listed.
func (r *fakeRepo) IsPathIgnored(_ context.Context, rel string) bool {
	for p := rel; p != "." && p != ""; p = path.Dir(p) {
		if r.ignored[p] {
			return true
		}
	}
	return false
}

func (r *fakeRepo) HeadTree(context.Context) (vcs.Tree, error) {
	if r.tree == nil {
		return nil, nil
	}
	return r.tree, nil
}

func (r *fakeRepo) FileStatus(_ context.Context, rel string) (vcs.Flags, error) {
	r.fileQueries = append(r.fileQueries, rel)
	return r.fileStatus[rel], nil
}

// workspace creates paths below a fresh directory. Names ending in "/" are
// directories, everything else an empty file.
func workspace(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", p, err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return root
}

func blob(p string) vcs.TreeEntry {
	dir, name := path.Split(p)
	return vcs.TreeEntry{Prefix: dir, Name: name, Kind: vcs.ObjectBlob}
}

func tree(p string) vcs.TreeEntry {
	dir, name := path.Split(p)
	return vcs.TreeEntry{Prefix: dir, Name: name, Kind: vcs.ObjectTree}
}
