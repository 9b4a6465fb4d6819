// Package scan reads the entries of a listing target.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dongminkim/kk/internal/entry"
	"github.com/dongminkim/kk/internal/log"
)

// ErrNotFound reports a listing target that does not exist.
var ErrNotFound = errors.New("No such file or directory")

// AccessError is returned for a target that cannot be listed.
type AccessError struct {
	Op   string // "access" or "open directory"
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// ReadDir lists dir according to opts. When dir is not a directory the
// listing holds the single entry for it.
func ReadDir(dir string, opts *Options) ([]*entry.Entry, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &AccessError{Op: "access", Path: dir, Err: ErrNotFound}
		}
		return nil, &AccessError{Op: "access", Path: dir, Err: cause(err)}
	}
	if !info.IsDir() {
		e, err := entry.FromPath(dir)
		if err != nil {
			return nil, &AccessError{Op: "access", Path: dir, Err: cause(err)}
		}
		return []*entry.Entry{e}, nil
	}

	var entries []*entry.Entry
	if opts.DotEntries() {
		entries = append(entries, dotEntries(dir)...)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, &AccessError{Op: "open directory", Path: dir, Err: cause(err)}
	}
	defer f.Close()

	// Directory order is kept for unsorted listings.
	children, err := f.ReadDir(-1)
	if err != nil && len(children) == 0 {
		return nil, &AccessError{Op: "open directory", Path: dir, Err: cause(err)}
	}

	skipped := 0
	for _, de := range children {
		name := de.Name()
		if strings.HasPrefix(name, ".") && !opts.ShowHidden() {
			continue
		}
		if opts.ShouldExclude(name) {
			skipped++
			continue
		}

		e, err := entry.FromPath(filepath.Join(dir, name))
		if err != nil {
			log.Printf("scan: stat %s: %v", name, err)
			continue
		}
		if opts.DirectoriesOnly && !e.IsDir() {
			continue
		}
		if opts.NoDirectories && e.IsDir() {
			continue
		}
		entries = append(entries, e)
	}

	log.Printf("scan: %s: %d entries (%d excluded)", dir, len(entries), skipped)
	return entries, nil
}

// FromArgs builds entries for explicit file arguments. Paths that cannot be
// read are reported and skipped.
func FromArgs(paths []string) ([]*entry.Entry, []error) {
	var (
		entries []*entry.Entry
		errs    []error
	)
	for _, p := range paths {
		e, err := entry.FromPath(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = ErrNotFound
			} else {
				err = cause(err)
			}
			errs = append(errs, &AccessError{Op: "access", Path: p, Err: err})
			continue
		}
		entries = append(entries, e)
	}
	return entries, errs
}

func dotEntries(dir string) []*entry.Entry {
	var out []*entry.Entry
	for _, name := range []string{".", ".."} {
		e, err := entry.FromPath(dir + string(filepath.Separator) + name)
		if err != nil {
			log.Printf("scan: stat %s/%s: %v", dir, name, err)
			continue
		}
		e.Name = name
		out = append(out, e)
	}
	return out
}

// cause drops the operation and path from a *fs.PathError.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
