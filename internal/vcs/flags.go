package vcs

// Flags is the raw per-path state reported by a status source.
type Flags uint16

const (
	IndexNew Flags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorkTreeNew
	WorkTreeModified
	WorkTreeDeleted
	WorkTreeRenamed
	WorkTreeTypeChange
	FlagIgnored
)

const (
	indexMask    = IndexNew | IndexModified | IndexDeleted | IndexRenamed | IndexTypeChange
	workTreeMask = WorkTreeModified | WorkTreeDeleted | WorkTreeRenamed | WorkTreeTypeChange
)

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Classify maps raw flags for a single path to its file-level Status.
// Ignored wins over everything, then worktree-new over index changes.
func Classify(f Flags) Status {
	if f.Has(FlagIgnored) {
		return Ignored
	}
	if f.Has(WorkTreeNew) {
		return Untracked
	}

	indexChanged := f&indexMask != 0
	wtChanged := f&workTreeMask != 0

	switch {
	case indexChanged && wtChanged:
		return BothChanged
	case indexChanged:
		return Staged
	case wtChanged:
		return WorkTreeChanged
	default:
		return Clean
	}
}
