// Package snapshot holds a single status query of a repository so every
// consumer of one listing reads the same view.
package snapshot

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dongminkim/kk/internal/pathutil"
	"github.com/dongminkim/kk/internal/vcs"
)

// Snapshot is the status of a repository at one instant.
type Snapshot struct {
	WorkDir string // Canonical working directory
	Entries []vcs.PathStatus
}

// Relative is a snapshot entry seen from a directory inside the working tree.
type Relative struct {
	Components []string
	Flags      vcs.Flags
}

// Take queries repo once and records the result.
func Take(ctx context.Context, repo vcs.Repo) (*Snapshot, error) {
	workDir := repo.WorkDir()
	if workDir == "" {
		return nil, fmt.Errorf("repository has no working directory")
	}
	canonical, err := pathutil.Canonical(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	entries, err := repo.Statuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query status: %w", err)
	}

	return &Snapshot{WorkDir: canonical, Entries: entries}, nil
}

// Abs returns the absolute path of a repository-relative path.
func (s *Snapshot) Abs(rel string) string {
	if rel == "" {
		return s.WorkDir
	}
	return filepath.Join(s.WorkDir, filepath.FromSlash(rel))
}

// Under returns the entries strictly below dir, in snapshot order, with
// their paths split into components relative to dir.
func (s *Snapshot) Under(dir string) []Relative {
	var out []Relative
	for _, e := range s.Entries {
		rel, ok := pathutil.Rel(dir, s.Abs(e.Path))
		if !ok {
			continue
		}
		comps := pathutil.Components(rel)
		if len(comps) == 0 {
			continue
		}
		out = append(out, Relative{Components: comps, Flags: e.Flags})
	}
	return out
}
