// Package render formats listing entries as long-format lines.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dongminkim/kk/internal/vcs"
)

// ColorMode controls when escape sequences are written.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Profile returns the color profile for output written to w.
func (m ColorMode) Profile(w io.Writer) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

const (
	colorOwner     = "241"
	colorLargeFile = "196"
	colorAncient   = "236"
)

// sixMonths is the age in seconds after which dates show the year.
const sixMonths int64 = 15724800

// Size thresholds in bytes, inclusive.
var sizeColors = []struct {
	max   int64
	color string
}{
	{1024, "46"},
	{2048, "82"},
	{3072, "118"},
	{5120, "154"},
	{10240, "190"},
	{20480, "226"},
	{40960, "220"},
	{102400, "214"},
	{262144, "208"},
	{524288, "202"},
}

// Age thresholds in seconds, exclusive. Negative ages are in the future.
var ageColors = []struct {
	below int64
	color string
}{
	{0, "196"},
	{60, "255"},
	{3600, "252"},
	{86400, "250"},
	{604800, "244"},
	{2419200, "244"},
	{15724800, "242"},
	{31449600, "240"},
	{62899200, "238"},
}

type marker struct {
	glyph string
	color string
}

var markers = map[vcs.Status]marker{
	vcs.Clean:             {"|", "82"},
	vcs.DirChanged:        {"+", "226"},
	vcs.DirUntracked:      {"?", "226"},
	vcs.DirEmptyUntracked: {"?", "238"},
	vcs.Ignored:           {"|", "238"},
	vcs.Untracked:         {"?", "196"},
	vcs.Staged:            {"+", "82"},
	vcs.WorkTreeChanged:   {"+", "196"},
	vcs.BothChanged:       {"+", "214"},
}

func sizeColor(size int64) string {
	for _, t := range sizeColors {
		if size <= t.max {
			return t.color
		}
	}
	return colorLargeFile
}

func ageColor(age int64) string {
	for _, t := range ageColors {
		if age < t.below {
			return t.color
		}
	}
	return colorAncient
}

// palette holds the styles bound to one lipgloss renderer.
type palette struct {
	r     *lipgloss.Renderer
	owner lipgloss.Style
}

func newPalette(w io.Writer, profile termenv.Profile) *palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &palette{
		r:     r,
		owner: r.NewStyle().Foreground(lipgloss.Color(colorOwner)),
	}
}

func (p *palette) fg(color, s string) string {
	return p.r.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}
