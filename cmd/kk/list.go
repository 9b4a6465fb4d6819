package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dongminkim/kk/internal/config"
	"github.com/dongminkim/kk/internal/entry"
	"github.com/dongminkim/kk/internal/git"
	"github.com/dongminkim/kk/internal/log"
	"github.com/dongminkim/kk/internal/order"
	"github.com/dongminkim/kk/internal/render"
	"github.com/dongminkim/kk/internal/rollup"
	"github.com/dongminkim/kk/internal/scan"
	"github.com/dongminkim/kk/internal/vcs"
)

// lister runs one invocation over a set of targets.
type lister struct {
	scan      *scan.Options
	sortKey   order.Key
	reverse   bool
	groupDirs bool
	noVCS     bool
	builder   *rollup.Builder
	render    render.Options
	stdout    io.Writer
	stderr    io.Writer
}

func runList(cmd *cobra.Command, args []string) error {
	if listDirectory && listNoDirectory {
		return errors.New("-d/--directory and -n/--no-directory cannot be used together")
	}

	cfg, err := config.Load(listConfig)
	if err != nil {
		return err
	}

	debugLog := cfg.DebugLog
	if cmd.Flags().Changed("debug-log") {
		debugLog = listDebugLog
	}
	if err := log.SetFile(debugLog); err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	l, err := newLister(cmd, cfg)
	if err != nil {
		return err
	}
	l.run(cmd.Context(), args)
	return nil
}

func newLister(cmd *cobra.Command, cfg *config.Config) (*lister, error) {
	changed := cmd.Flags().Changed
	pick := func(name string, flagVal, cfgVal bool) bool {
		if changed(name) {
			return flagVal
		}
		return cfgVal
	}

	opts := scan.DefaultOptions().
		WithAll(listAll).
		WithAlmostAll(listAlmostAll).
		WithDirectoriesOnly(listDirectory).
		WithNoDirectories(listNoDirectory)
	for _, pattern := range append(cfg.Exclude, listExclude...) {
		if err := opts.AddExcludePattern(pattern); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	letters := order.Flags{
		Unsorted:   listUnsorted,
		Size:       listSortSize,
		ModTime:    listSortTime,
		ChangeTime: listSortCtime,
		AccessTime: listSortAtime,
	}
	word, hasWord := listSortWord, changed("sort")
	if !hasWord && letters == (order.Flags{}) && cfg.Sort != "" {
		word, hasWord = cfg.Sort, true
	}

	colorWord := cfg.Color
	if changed("color") {
		colorWord = listColor
	}
	colorMode, err := render.ParseColorMode(colorWord)
	if err != nil {
		return nil, err
	}

	l := &lister{
		scan:      opts,
		sortKey:   order.Resolve(word, hasWord, letters),
		reverse:   pick("reverse", listReverse, cfg.Reverse),
		groupDirs: pick("group-directories-first", listGroupDirs, cfg.GroupDirectoriesFirst),
		noVCS:     pick("no-vcs", listNoVCS, cfg.NoVCS),
		builder:   rollup.NewBuilder(git.NewSource()),
		render: render.Options{
			Color:       colorMode,
			Human:       pick("human", listHuman, cfg.Human),
			SI:          pick("si", listSI, cfg.SI),
			GroupDigits: pick("group-digits", listGroupDigits, cfg.GroupDigits),
			Colors:      render.ResolveFileColors(cfg.LSColors, os.Getenv("LSCOLORS"), runtime.GOOS),
		},
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}
	log.Printf("kk: sort=%s reverse=%v group=%v vcs=%v color=%s",
		l.sortKey, l.reverse, l.groupDirs, !l.noVCS, colorMode)
	return l, nil
}

// run lists every target. Errors for one target are reported and the
// remaining targets are still listed.
func (l *lister) run(ctx context.Context, paths []string) {
	dirs, files := resolveTargets(paths, l.scan.DirectoriesOnly)
	out := render.New(l.stdout, l.render)
	defer out.Flush()

	multi := len(dirs) > 1
	for i, dir := range dirs {
		fileGroup := dir == "." && len(files) > 0
		if multi {
			if i > 0 {
				out.Blank()
			}
			if !fileGroup {
				out.Header(dir)
			}
		}

		var entries []*entry.Entry
		if fileGroup {
			var errs []error
			entries, errs = scan.FromArgs(files)
			for _, err := range errs {
				l.report(out, err)
			}
		} else {
			var err error
			entries, err = scan.ReadDir(dir, l.scan)
			if err != nil {
				l.report(out, err)
				continue
			}
		}

		if len(entries) == 0 {
			if !multi && len(files) == 0 {
				out.Total(nil)
			}
			continue
		}

		order.Sort(entries, l.sortKey, l.reverse, l.groupDirs)
		if !fileGroup {
			out.Total(entries)
		}
		out.Entries(entries, l.statuses(ctx, dir))
	}
}

func (l *lister) statuses(ctx context.Context, dir string) vcs.StatusMap {
	if l.noVCS {
		return nil
	}
	m, ok := l.builder.Build(ctx, dir, rollup.Options{
		ShowAll:     l.scan.All,
		AlmostAll:   l.scan.AlmostAll,
		NoDirectory: l.scan.NoDirectories,
	})
	if !ok {
		return nil
	}
	return m
}

// report writes a per-target error after flushing pending listing output
// so the two streams stay in order on a terminal.
func (l *lister) report(out *render.Renderer, err error) {
	_ = out.Flush()
	fmt.Fprintf(l.stderr, "kk: %v\n", err)
}
