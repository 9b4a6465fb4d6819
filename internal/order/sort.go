// Package order sorts listing entries.
package order

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dongminkim/kk/internal/entry"
)

// Key selects the primary sort field.
type Key int

const (
	Name Key = iota
	Size
	ModTime
	ChangeTime
	AccessTime
	Unsorted
)

func (k Key) String() string {
	switch k {
	case Size:
		return "size"
	case ModTime:
		return "time"
	case ChangeTime:
		return "ctime"
	case AccessTime:
		return "atime"
	case Unsorted:
		return "none"
	default:
		return "name"
	}
}

// ParseKey maps a --sort word to a key. Unknown words sort by name.
func ParseKey(word string) Key {
	switch word {
	case "none":
		return Unsorted
	case "size":
		return Size
	case "time":
		return ModTime
	case "ctime", "status":
		return ChangeTime
	case "atime", "access", "use":
		return AccessTime
	default:
		return Name
	}
}

// Flags are the single-letter sort switches.
type Flags struct {
	Unsorted   bool // -U
	Size       bool // -S
	ModTime    bool // -t
	ChangeTime bool // -c
	AccessTime bool // -u
}

// Resolve picks the sort key. A --sort word wins over letters; among
// letters -U, -S, -t, -c and -u are checked in that order.
func Resolve(word string, hasWord bool, f Flags) Key {
	if hasWord {
		return ParseKey(word)
	}
	switch {
	case f.Unsorted:
		return Unsorted
	case f.Size:
		return Size
	case f.ModTime:
		return ModTime
	case f.ChangeTime:
		return ChangeTime
	case f.AccessTime:
		return AccessTime
	default:
		return Name
	}
}

// Sort orders entries in place. Name sorts ascending ignoring case; the
// other keys put the largest or newest first and break ties by name in
// descending byte order. reverse flips every comparison except the
// directories-first partition. Unsorted without grouping keeps the
// directory read order.
func Sort(entries []*entry.Entry, key Key, reverse, groupDirs bool) {
	if key == Unsorted && !groupDirs {
		return
	}

	slices.SortStableFunc(entries, func(a, b *entry.Entry) int {
		if groupDirs {
			ad, bd := a.IsDir(), b.IsDir()
			if ad && !bd {
				return -1
			}
			if !ad && bd {
				return 1
			}
		}
		if key == Unsorted {
			return 0
		}

		c := compare(a, b, key)
		if reverse {
			return -c
		}
		return c
	})
}

func compare(a, b *entry.Entry, key Key) int {
	var c int
	switch key {
	case Name:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case Size:
		c = cmp.Compare(b.Size, a.Size)
	case ModTime:
		c = cmp.Compare(b.ModTime, a.ModTime)
	case ChangeTime:
		c = cmp.Compare(b.ChangeTime, a.ChangeTime)
	case AccessTime:
		c = cmp.Compare(b.AccessTime, a.AccessTime)
	}
	if c != 0 {
		return c
	}
	return strings.Compare(b.Name, a.Name)
}
