package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dongminkim/kk/internal/entry"
	"github.com/dongminkim/kk/internal/vcs"
)

// Options configures a Renderer.
type Options struct {
	Color       ColorMode
	Human       bool
	SI          bool
	GroupDigits bool // 1,234,567 in the size column and total line
	Colors      FileColors
	Location    *time.Location // Defaults to time.Local
}

// Renderer writes long-format listings.
type Renderer struct {
	out  *bufio.Writer
	opts Options
	pal  *palette
	now  func() time.Time
}

// New creates a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Renderer{
		out:  bufio.NewWriter(w),
		opts: opts,
		pal:  newPalette(w, opts.Color.Profile(w)),
		now:  time.Now,
	}
}

// SetClock replaces the clock used for date formatting and age colors.
func (r *Renderer) SetClock(now func() time.Time) {
	r.now = now
}

// Flush writes any buffered output.
func (r *Renderer) Flush() error {
	return r.out.Flush()
}

// Blank writes an empty separator line.
func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

// Header writes the "name:" line introducing one of several targets.
func (r *Renderer) Header(name string) {
	fmt.Fprintf(r.out, "%s:\n", name)
}

// Total writes the block total of entries.
func (r *Renderer) Total(entries []*entry.Entry) {
	var blocks int64
	for _, e := range entries {
		blocks += e.Blocks
	}
	fmt.Fprintf(r.out, "total %s\n", r.count(blocks))
}

func (r *Renderer) count(n int64) string {
	if r.opts.GroupDigits {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}

// ColumnWidths are the widths of the padded columns.
type ColumnWidths struct {
	Perms int
	Nlink int
	Owner int
	Group int
	Size  int
}

// Columns computes column widths and the size strings of entries.
func (r *Renderer) Columns(entries []*entry.Entry) (ColumnWidths, []string) {
	var w ColumnWidths
	sizes := make([]string, len(entries))
	for i, e := range entries {
		if r.opts.Human {
			sizes[i] = HumanSize(e.Size, r.opts.SI)
		} else {
			sizes[i] = r.count(e.Size)
		}
		w.Perms = max(w.Perms, len(e.Permissions()))
		w.Nlink = max(w.Nlink, len(strconv.FormatUint(e.Nlink, 10)))
		w.Owner = max(w.Owner, lipgloss.Width(e.Owner))
		w.Group = max(w.Group, lipgloss.Width(e.Group))
		w.Size = max(w.Size, len(sizes[i]))
	}
	return w, sizes
}

// Entries writes one line per entry. A nil statuses map omits the VCS
// marker column; names missing from a non-nil map get a blank marker.
func (r *Renderer) Entries(entries []*entry.Entry, statuses vcs.StatusMap) {
	widths, sizes := r.Columns(entries)
	now := r.now().Unix()
	for i, e := range entries {
		var status *vcs.Status
		if statuses != nil {
			s := statuses.Lookup(e.Name)
			status = &s
		}
		fmt.Fprintln(r.out, r.Line(e, widths, sizes[i], status, now))
	}
}

// Line formats a single entry. status is nil when no marker column is shown.
func (r *Renderer) Line(e *entry.Entry, w ColumnWidths, size string, status *vcs.Status, now int64) string {
	var b strings.Builder

	b.WriteString(padRight(e.Permissions(), w.Perms))
	b.WriteByte(' ')
	b.WriteString(padLeft(strconv.FormatUint(e.Nlink, 10), w.Nlink))
	b.WriteByte(' ')
	b.WriteString(r.pal.owner.Render(padLeft(e.Owner, w.Owner)))
	b.WriteByte(' ')
	b.WriteString(r.pal.owner.Render(padLeft(e.Group, w.Group)))
	b.WriteByte(' ')
	b.WriteString(r.pal.fg(sizeColor(e.Size), padLeft(size, w.Size)))

	age := now - e.ModTime
	b.WriteByte(' ')
	b.WriteString(r.pal.fg(ageColor(age), r.formatDate(e.ModTime, age)))

	if status != nil {
		b.WriteString(r.marker(*status))
	}

	b.WriteByte(' ')
	if c, ok := r.opts.Colors.For(e); ok {
		b.WriteString(c.style(r.pal.r.NewStyle()).Render(e.Name))
	} else {
		b.WriteString(e.Name)
	}

	if e.HasTarget {
		b.WriteString(" -> ")
		b.WriteString(e.SymlinkTarget)
	}
	return b.String()
}

func (r *Renderer) marker(s vcs.Status) string {
	m, ok := markers[s]
	if !ok {
		return "  "
	}
	return " " + r.pal.fg(m.color, m.glyph)
}

// formatDate renders "DD Mon HH:MM" for recent files and "DD Mon YYYY"
// otherwise, with the month padded so both forms line up.
func (r *Renderer) formatDate(mtime, age int64) string {
	t := time.Unix(mtime, 0).In(r.opts.Location)
	day := fmt.Sprintf("%2d", t.Day())
	if age < sixMonths {
		return fmt.Sprintf("%s %-5s %s", day, t.Format("Jan"), t.Format("15:04"))
	}
	return fmt.Sprintf("%s %-6s %d", day, t.Format("Jan"), t.Year())
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
