package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/dongminkim/kk/internal/entry"
	"github.com/dongminkim/kk/internal/vcs"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestRenderer(buf *bytes.Buffer, mode ColorMode) *Renderer {
	r := New(buf, Options{Color: mode, Colors: DefaultFileColors(), Location: time.UTC})
	r.SetClock(func() time.Time { return testNow })
	return r
}

func regular(name string, size int64, mtime time.Time) *entry.Entry {
	return &entry.Entry{
		Name:    name,
		Mode:    entry.ModeRegular | 0o644,
		Nlink:   1,
		Owner:   "alice",
		Group:   "staff",
		Size:    size,
		Blocks:  8,
		ModTime: mtime.Unix(),
	}
}

func TestLineRecentFile(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)
	e := regular("file.txt", 2048, testNow.Add(-time.Hour))

	w, sizes := r.Columns([]*entry.Entry{e})
	clean := vcs.Clean
	got := r.Line(e, w, sizes[0], &clean, testNow.Unix())

	want := "-rw-r--r-- 1 alice staff 2048 15 Mar   11:00 | file.txt"
	if got != want {
		t.Fatalf("line mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestLineOldFileShowsYear(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)
	e := regular("old.txt", 10, testNow.AddDate(-1, 0, 0))

	w, sizes := r.Columns([]*entry.Entry{e})
	got := r.Line(e, w, sizes[0], nil, testNow.Unix())

	want := "-rw-r--r-- 1 alice staff 10 15 Mar    2023 old.txt"
	if got != want {
		t.Fatalf("line mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestLineSymlinkTarget(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)
	e := regular("link", 4, testNow)
	e.Mode = entry.ModeSymlink | 0o777
	e.SymlinkTarget = "target/dir"
	e.HasTarget = true

	w, sizes := r.Columns([]*entry.Entry{e})
	got := r.Line(e, w, sizes[0], nil, testNow.Unix())
	if !strings.HasSuffix(got, " link -> target/dir") {
		t.Fatalf("expected symlink target, got %q", got)
	}
	if !strings.HasPrefix(got, "lrwxrwxrwx") {
		t.Fatalf("expected symlink permissions, got %q", got)
	}
}

func TestEntriesAlignColumns(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)
	a := regular("a", 5, testNow)
	b := regular("b", 123456, testNow)
	b.Nlink = 12
	b.Owner = "root"

	r.Entries([]*entry.Entry{a, b}, vcs.StatusMap{"a": vcs.Untracked})
	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if want := "-rw-r--r--  1 alice staff      5 15 Mar   12:00 ? a"; lines[0] != want {
		t.Fatalf("line 0\n got: %q\nwant: %q", lines[0], want)
	}
	// Names missing from the map get a blank marker.
	if want := "-rw-r--r-- 12  root staff 123456 15 Mar   12:00   b"; lines[1] != want {
		t.Fatalf("line 1\n got: %q\nwant: %q", lines[1], want)
	}
}

func TestEntriesHumanSizes(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: ColorNever, Human: true, Location: time.UTC})
	r.SetClock(func() time.Time { return testNow })

	w, sizes := r.Columns([]*entry.Entry{regular("a", 2048, testNow), regular("b", 3, testNow)})
	if sizes[0] != "2K" || sizes[1] != "3" || w.Size != 2 {
		t.Fatalf("unexpected sizes %v width %d", sizes, w.Size)
	}
}

func TestGroupDigits(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: ColorNever, GroupDigits: true, Location: time.UTC})
	r.SetClock(func() time.Time { return testNow })

	big := regular("big", 1234567, testNow)
	big.Blocks = 2412
	small := regular("small", 999, testNow)
	entries := []*entry.Entry{big, small}

	w, sizes := r.Columns(entries)
	if sizes[0] != "1,234,567" || sizes[1] != "999" || w.Size != 9 {
		t.Fatalf("unexpected sizes %v width %d", sizes, w.Size)
	}

	r.Total(entries)
	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if want := "total 2,420\n"; buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGroupDigitsIgnoredWithHumanSizes(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: ColorNever, Human: true, GroupDigits: true, Location: time.UTC})

	_, sizes := r.Columns([]*entry.Entry{regular("a", 1234567, testNow)})
	if sizes[0] != "2M" {
		t.Fatalf("unexpected size %q", sizes[0])
	}
}

func TestTotalHeaderBlank(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorNever)
	r.Header("src")
	r.Total([]*entry.Entry{regular("a", 1, testNow), regular("b", 1, testNow)})
	r.Blank()
	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if want := "src:\ntotal 16\n\n"; buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestMarkersColored(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorAlways)

	tests := []struct {
		status vcs.Status
		want   string
	}{
		{vcs.Clean, " \x1b[38;5;82m|\x1b[0m"},
		{vcs.DirChanged, " \x1b[38;5;226m+\x1b[0m"},
		{vcs.DirUntracked, " \x1b[38;5;226m?\x1b[0m"},
		{vcs.DirEmptyUntracked, " \x1b[38;5;238m?\x1b[0m"},
		{vcs.Ignored, " \x1b[38;5;238m|\x1b[0m"},
		{vcs.Untracked, " \x1b[38;5;196m?\x1b[0m"},
		{vcs.Staged, " \x1b[38;5;82m+\x1b[0m"},
		{vcs.WorkTreeChanged, " \x1b[38;5;196m+\x1b[0m"},
		{vcs.BothChanged, " \x1b[38;5;214m+\x1b[0m"},
		{vcs.None, "  "},
	}
	for _, tt := range tests {
		if got := r.marker(tt.status); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestDirectoryNameColored(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, ColorAlways)
	d := regular("src", 4096, testNow)
	d.Mode = entry.ModeDir | 0o755

	w, sizes := r.Columns([]*entry.Entry{d})
	got := r.Line(d, w, sizes[0], nil, testNow.Unix())
	if !strings.HasSuffix(got, "\x1b[34msrc\x1b[0m") {
		t.Fatalf("expected blue directory name, got %q", got)
	}
	if !strings.Contains(got, "\x1b[38;5;241malice\x1b[0m") {
		t.Fatalf("expected dimmed owner, got %q", got)
	}
}

func TestSizeAndAgeColors(t *testing.T) {
	sizes := []struct {
		size int64
		want string
	}{
		{0, "46"}, {1024, "46"}, {1025, "82"}, {5120, "154"}, {524288, "202"}, {524289, "196"},
	}
	for _, tt := range sizes {
		if got := sizeColor(tt.size); got != tt.want {
			t.Fatalf("sizeColor(%d) = %s, want %s", tt.size, got, tt.want)
		}
	}

	ages := []struct {
		age  int64
		want string
	}{
		{-5, "196"}, {0, "255"}, {59, "255"}, {60, "252"}, {86399, "250"},
		{604800, "244"}, {15724799, "242"}, {31449600, "238"}, {62899200, "236"},
	}
	for _, tt := range ages {
		if got := ageColor(tt.age); got != tt.want {
			t.Fatalf("ageColor(%d) = %s, want %s", tt.age, got, tt.want)
		}
	}
}

func TestColorModeProfile(t *testing.T) {
	var buf bytes.Buffer
	if p := ColorAlways.Profile(&buf); p != termenv.ANSI256 {
		t.Fatalf("always: got profile %v", p)
	}
	if p := ColorNever.Profile(&buf); p != termenv.Ascii {
		t.Fatalf("never: got profile %v", p)
	}
	if p := ColorAuto.Profile(&buf); p != termenv.Ascii {
		t.Fatalf("auto on a buffer: got profile %v", p)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
