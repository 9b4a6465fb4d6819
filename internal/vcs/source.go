package vcs

import (
	"context"
	"errors"
)

// ErrNotRepository is returned by Source.Discover when a path is not inside
// a repository with a working directory.
var ErrNotRepository = errors.New("not inside a repository")

// PathStatus is one entry of a status query. Path is relative to the
// repository working directory, slash separated, without a trailing slash.
type PathStatus struct {
	Path  string
	Flags Flags
}

// ObjectKind is the type of an object in a committed tree.
type ObjectKind uint8

const (
	ObjectBlob ObjectKind = iota
	ObjectTree
	ObjectCommit
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectBlob:
		return "blob"
	case ObjectTree:
		return "tree"
	default:
		return "commit"
	}
}

// TreeEntry is one object visited during a tree walk. Prefix is the
// slash-terminated directory holding the entry, empty at the top level.
type TreeEntry struct {
	Prefix string
	Name   string
	Kind   ObjectKind
}

// Path returns the repository-relative path of the entry.
func (e TreeEntry) Path() string {
	return e.Prefix + e.Name
}

// Tree is a committed tree that can be walked parent-first.
type Tree interface {
	// Walk visits entries in pre-order until fn returns false.
	Walk(fn func(TreeEntry) bool) error
}

// Repo is a discovered repository.
type Repo interface {
	WorkDir() string
	// Statuses reports every non-clean path, including untracked files
	// (recursively) and ignored paths (without descending into ignored
	// directories).
	Statuses(ctx context.Context) ([]PathStatus, error)
	IsPathIgnored(ctx context.Context, rel string) bool
	// HeadTree returns the tree of the current commit, or nil when there is none.
	HeadTree(ctx context.Context) (Tree, error)
	FileStatus(ctx context.Context, rel string) (Flags, error)
}

// Source finds the repository containing a path.
type Source interface {
	Discover(ctx context.Context, path string) (Repo, error)
}
