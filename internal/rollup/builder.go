// Package rollup builds the per-entry status map of a listed directory by
// rolling repository status up to the directory's direct children.
package rollup

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/dongminkim/kk/internal/log"
	"github.com/dongminkim/kk/internal/pathutil"
	"github.com/dongminkim/kk/internal/snapshot"
	"github.com/dongminkim/kk/internal/vcs"
)

// Options mirror the listing flags that affect synthetic entries.
type Options struct {
	ShowAll     bool
	AlmostAll   bool
	NoDirectory bool
}

func (o Options) dotEntries() bool {
	return o.ShowAll && !o.AlmostAll && !o.NoDirectory
}

// ReadDirFunc lists the direct children of a directory.
type ReadDirFunc func(name string) ([]os.DirEntry, error)

// Builder computes status maps against a status source.
type Builder struct {
	source  vcs.Source
	readDir ReadDirFunc
}

// NewBuilder creates a builder reading repositories from source.
func NewBuilder(source vcs.Source) *Builder {
	return &Builder{
		source:  source,
		readDir: os.ReadDir,
	}
}

// SetReadDirFunc replaces the directory reader used for empty-directory
// detection and ignored-root propagation.
func (b *Builder) SetReadDirFunc(f ReadDirFunc) {
	b.readDir = f
}

// listing carries the state of one Build call.
type listing struct {
	repo      vcs.Repo
	snap      *snapshot.Snapshot
	root      string // Canonical listed directory
	relRoot   string // root relative to the working directory, "" at the top
	ignored   bool   // root itself is ignored
	result    vcs.StatusMap
	backfills int
}

// Build returns the status of every entry of root. The second result is
// false when root is not inside a repository or the repository cannot be
// queried; callers then render without status.
func (b *Builder) Build(ctx context.Context, root string, opts Options) (vcs.StatusMap, bool) {
	repo, err := b.source.Discover(ctx, root)
	if err != nil {
		log.Printf("rollup: no repository for %s: %v", root, err)
		return nil, false
	}

	snap, err := snapshot.Take(ctx, repo)
	if err != nil {
		log.Printf("rollup: %s: %v", root, err)
		return nil, false
	}

	absRoot, err := pathutil.Canonical(root)
	if err != nil {
		log.Printf("rollup: failed to resolve %s: %v", root, err)
		return nil, false
	}

	relRoot, ok := pathutil.Rel(snap.WorkDir, absRoot)
	if !ok {
		log.Printf("rollup: %s is outside working directory %s", absRoot, snap.WorkDir)
		return nil, false
	}

	l := &listing{
		repo:    repo,
		snap:    snap,
		root:    absRoot,
		relRoot: filepath.ToSlash(relRoot),
		result:  make(vcs.StatusMap),
	}

	l.collect()
	l.backfillClean(ctx)

	if l.relRoot != "" {
		l.ignored = repo.IsPathIgnored(ctx, l.relRoot)
	}
	children := b.children(absRoot)
	if l.ignored {
		l.propagateIgnored(children)
	}
	l.markEmptyDirs(ctx, children)

	if opts.dotEntries() {
		l.addDot()
		if l.relRoot != "" {
			l.addDotDot(ctx)
		}
	}

	log.Event("rollup", "built", "root", absRoot, "workdir", snap.WorkDir,
		"entries", len(l.result), "status_paths", len(snap.Entries),
		"backfills", l.backfills, "ignored_root", l.ignored)

	return l.result, true
}

// collect folds every reported path below root into its first component.
// Direct children take their classified status as is. Nested paths are
// remapped to a directory status and only replace a lower ranked one, so
// an ignored file never hides a tracked change next to it.
//
// Ties keep the first status seen. Within one directory nested statuses of
// equal rank remap to the same value, so the choice is not observable.
func (l *listing) collect() {
	for _, rel := range l.snap.Under(l.root) {
		name := rel.Components[0]
		status := vcs.Classify(rel.Flags)

		if len(rel.Components) == 1 {
			l.result[name] = status
			continue
		}

		status = vcs.DeepRemap(status)
		existing, ok := l.result[name]
		if !ok || status.Outranks(existing) {
			l.result[name] = status
		}
	}
}

// backfillClean marks tracked paths the status query skipped as Clean. A
// tracked path inside an entry recorded as Ignored was force-added; the
// entry becomes Clean when that path is clean.
func (l *listing) backfillClean(ctx context.Context) {
	tree, err := l.repo.HeadTree(ctx)
	if err != nil || tree == nil {
		if err != nil {
			log.Printf("rollup: head tree: %v", err)
		}
		return
	}

	err = tree.Walk(func(te vcs.TreeEntry) bool {
		rel, ok := pathutil.Rel(l.root, l.snap.Abs(te.Path()))
		if !ok {
			return true
		}
		comps := pathutil.Components(rel)
		if len(comps) == 0 {
			return true
		}
		name := comps[0]

		existing, ok := l.result[name]
		switch {
		case !ok:
			l.result[name] = vcs.Clean
		case existing == vcs.Ignored:
			l.backfills++
			flags, err := l.repo.FileStatus(ctx, te.Path())
			if err != nil {
				return true
			}
			if vcs.Classify(flags) == vcs.Clean {
				l.result[name] = vcs.Clean
			}
		}
		return true
	})
	if err != nil {
		log.Printf("rollup: tree walk: %v", err)
	}
}

// propagateIgnored marks every unlisted child of an ignored root as Ignored.
func (l *listing) propagateIgnored(children []os.DirEntry) {
	for _, de := range children {
		if _, ok := l.result[de.Name()]; !ok {
			l.result[de.Name()] = vcs.Ignored
		}
	}
}

// markEmptyDirs assigns a status to subdirectories the status query never
// mentions: they hold nothing tracked and nothing untracked.
func (l *listing) markEmptyDirs(ctx context.Context, children []os.DirEntry) {
	for _, de := range children {
		if !de.IsDir() {
			continue
		}
		name := de.Name()
		if _, ok := l.result[name]; ok {
			continue
		}
		if l.repo.IsPathIgnored(ctx, path.Join(l.relRoot, name)) {
			l.result[name] = vcs.Ignored
		} else {
			l.result[name] = vcs.DirEmptyUntracked
		}
	}
}

func (l *listing) addDot() {
	if _, ok := l.result[vcs.DotName]; ok {
		return
	}

	var status vcs.Status
	switch {
	case l.result.Len() > 0:
		status = l.result.Aggregate()
	case l.relRoot == "":
		status = vcs.Clean
	case l.ignored:
		status = vcs.Ignored
	default:
		status = vcs.DirEmptyUntracked
	}
	l.result[vcs.DotName] = status
}

func (l *listing) addDotDot(ctx context.Context) {
	if _, ok := l.result[vcs.DotDotName]; ok {
		return
	}

	parent := filepath.Dir(l.root)
	relParent, ok := pathutil.Rel(l.snap.WorkDir, parent)
	if !ok {
		return
	}
	if relParent != "" && l.repo.IsPathIgnored(ctx, filepath.ToSlash(relParent)) {
		l.result[vcs.DotDotName] = vcs.Ignored
		return
	}
	l.result[vcs.DotDotName] = AggregateDir(l.snap, parent)
}

func (b *Builder) children(dir string) []os.DirEntry {
	entries, err := b.readDir(dir)
	if err != nil {
		log.Printf("rollup: read %s: %v", dir, err)
		return nil
	}
	return entries
}
