package git

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/dongminkim/kk/internal/vcs"
)

// statusArgs builds a status query reporting untracked files individually
// and ignored directories as a single entry.
func statusArgs(paths ...string) []string {
	args := []string{
		"status", "--porcelain=v1", "-z",
		"--untracked-files=all", "--ignored=matching", "--no-renames",
	}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	return args
}

// ParsePorcelain parses `git status --porcelain=v1 -z` output. Paths lose
// any trailing slash and the result is sorted by path, so a directory entry
// always precedes the entries nested in it.
func ParsePorcelain(out []byte) ([]vcs.PathStatus, error) {
	records := bytes.Split(out, []byte{0})

	var entries []vcs.PathStatus
	for i := 0; i < len(records); i++ {
		rec := records[i]
		if len(rec) == 0 {
			continue
		}
		if len(rec) < 4 || rec[2] != ' ' {
			return nil, fmt.Errorf("malformed status record %q", rec)
		}

		x, y := rec[0], rec[1]
		p := strings.TrimSuffix(string(rec[3:]), "/")

		// Renames and copies carry the source path as the next record.
		if x == 'R' || x == 'C' || y == 'R' || y == 'C' {
			i++
		}

		entries = append(entries, vcs.PathStatus{Path: p, Flags: flagsFor(x, y)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func flagsFor(x, y byte) vcs.Flags {
	switch {
	case x == '?' && y == '?':
		return vcs.WorkTreeNew
	case x == '!' && y == '!':
		return vcs.FlagIgnored
	case isUnmerged(x, y):
		return vcs.IndexModified | vcs.WorkTreeModified
	}

	var f vcs.Flags
	switch x {
	case 'A', 'C':
		f |= vcs.IndexNew
	case 'M':
		f |= vcs.IndexModified
	case 'D':
		f |= vcs.IndexDeleted
	case 'R':
		f |= vcs.IndexRenamed
	case 'T':
		f |= vcs.IndexTypeChange
	}
	switch y {
	case 'M':
		f |= vcs.WorkTreeModified
	case 'D':
		f |= vcs.WorkTreeDeleted
	case 'R':
		f |= vcs.WorkTreeRenamed
	case 'T':
		f |= vcs.WorkTreeTypeChange
	case 'A':
		f |= vcs.WorkTreeNew
	}
	return f
}

// isUnmerged matches the conflict states of the porcelain format:
// DD, AU, UD, UA, DU, AA, UU.
func isUnmerged(x, y byte) bool {
	return x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D')
}

// ParseLsTree parses `git ls-tree -r -t -z` output into tree entries in the
// order git printed them.
func ParseLsTree(out []byte) ([]vcs.TreeEntry, error) {
	var entries []vcs.TreeEntry
	for _, rec := range bytes.Split(out, []byte{0}) {
		if len(rec) == 0 {
			continue
		}
		tab := bytes.IndexByte(rec, '\t')
		if tab < 0 {
			return nil, fmt.Errorf("malformed tree record %q", rec)
		}
		meta := strings.Fields(string(rec[:tab]))
		if len(meta) < 3 {
			return nil, fmt.Errorf("malformed tree record %q", rec)
		}

		var kind vcs.ObjectKind
		switch meta[1] {
		case "blob":
			kind = vcs.ObjectBlob
		case "tree":
			kind = vcs.ObjectTree
		case "commit":
			kind = vcs.ObjectCommit
		default:
			return nil, fmt.Errorf("unknown object type %q", meta[1])
		}

		dir, name := path.Split(string(rec[tab+1:]))
		entries = append(entries, vcs.TreeEntry{Prefix: dir, Name: name, Kind: kind})
	}
	return entries, nil
}
