// Package vcs defines per-entry version-control status and the contract of
// the repository status source kk reads it from.
package vcs

// Status is the version-control state shown next to a listed entry. The set
// is closed; Rank and the remap functions cover every value.
type Status uint8

const (
	None              Status = iota // outside any repository
	Clean                           // tracked, no pending changes
	Ignored                         // matched by an ignore rule
	Untracked                       // new file unknown to the index
	Staged                          // index changed, work tree matches index
	WorkTreeChanged                 // work tree changed, index matches HEAD
	BothChanged                     // index and work tree both changed
	DirChanged                      // directory containing changes
	DirUntracked                    // directory containing untracked files
	DirEmptyUntracked               // directory with nothing tracked or untracked inside
)

// AllStatuses lists every Status value.
var AllStatuses = []Status{
	None, Clean, Ignored, Untracked, Staged, WorkTreeChanged,
	BothChanged, DirChanged, DirUntracked, DirEmptyUntracked,
}

func (s Status) String() string {
	switch s {
	case None:
		return "none"
	case Clean:
		return "clean"
	case Ignored:
		return "ignored"
	case Untracked:
		return "untracked"
	case Staged:
		return "staged"
	case WorkTreeChanged:
		return "worktree-changed"
	case BothChanged:
		return "both-changed"
	case DirChanged:
		return "dir-changed"
	case DirUntracked:
		return "dir-untracked"
	case DirEmptyUntracked:
		return "dir-empty-untracked"
	default:
		return "unknown"
	}
}

// Rank orders statuses by how much attention they need. Higher wins when
// statuses are merged.
func (s Status) Rank() int {
	switch s {
	case Untracked, DirUntracked, DirEmptyUntracked:
		return 4
	case BothChanged, WorkTreeChanged, DirChanged:
		return 3
	case Staged:
		return 2
	case Clean:
		return 1
	case Ignored, None:
		return 0
	default:
		return 0
	}
}

// Outranks reports whether s ranks strictly above other.
func (s Status) Outranks(other Status) bool {
	return s.Rank() > other.Rank()
}

// DeepRemap converts the status of a path nested below a listed directory
// into the status that directory inherits from it.
func DeepRemap(s Status) Status {
	switch s {
	case Ignored:
		return Ignored
	case Untracked:
		return DirUntracked
	default:
		return DirChanged
	}
}

// DirEquivalent converts the winning status of a directory's contents into
// the directory's own status. Statuses that already describe a directory,
// and Clean, Ignored and None, pass through.
func DirEquivalent(s Status) Status {
	switch s {
	case Untracked, DirEmptyUntracked:
		return DirUntracked
	case WorkTreeChanged, BothChanged, Staged:
		return DirChanged
	default:
		return s
	}
}
