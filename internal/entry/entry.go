package entry

import (
	"os"
	"path/filepath"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from raw st_mode bits.
func KindFromMode(mode uint32) Kind {
	switch mode & ModeTypeMask {
	case ModeRegular:
		return KindFile
	case ModeDir:
		return KindDir
	case ModeSymlink:
		return KindSymlink
	default:
		return KindOther
	}
}

// Entry is one listed filesystem object with the metadata needed to render it.
type Entry struct {
	Path          string
	Name          string // Display name
	Kind          Kind
	Mode          uint32 // Raw st_mode bits
	Nlink         uint64
	UID           uint32
	GID           uint32
	Owner         string
	Group         string
	Size          int64
	Blocks        int64 // st_blocks, 512-byte units
	ModTime       int64 // Unix seconds
	AccessTime    int64
	ChangeTime    int64
	SymlinkTarget string // Empty unless Kind is KindSymlink
	HasTarget     bool
}

// FromPath reads metadata for path without following a final symlink.
func FromPath(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	st := statOf(info)
	e := &Entry{
		Path:       path,
		Name:       displayName(path),
		Mode:       st.mode,
		Nlink:      st.nlink,
		UID:        st.uid,
		GID:        st.gid,
		Owner:      lookupOwner(st.uid),
		Group:      lookupGroup(st.gid),
		Size:       info.Size(),
		Blocks:     st.blocks,
		ModTime:    info.ModTime().Unix(),
		AccessTime: st.atime,
		ChangeTime: st.ctime,
	}
	e.Kind = KindFromMode(e.Mode)

	if e.Kind == KindSymlink {
		if target, err := os.Readlink(path); err == nil {
			e.SymlinkTarget = target
			e.HasTarget = true
		}
	}

	return e, nil
}

// IsDir reports whether the entry itself is a directory. Symlinks to
// directories are not.
func (e *Entry) IsDir() bool {
	return e.Mode&ModeTypeMask == ModeDir
}

// IsExecutable reports whether any execute bit is set.
func (e *Entry) IsExecutable() bool {
	return e.Mode&0o111 != 0
}

// Permissions returns the ls-style permission string for the entry.
func (e *Entry) Permissions() string {
	return FormatPermissions(e.Mode)
}

func displayName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return path
	}
	return base
}
