package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/dongminkim/kk/internal/entry"
)

// TypeColor is a foreground/background pair from the basic eight colors.
// -1 leaves the terminal default.
type TypeColor struct {
	FG   int
	BG   int
	Bold bool
}

func (c TypeColor) style(s lipgloss.Style) lipgloss.Style {
	if c.FG >= 0 {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(c.FG)))
	}
	if c.BG >= 0 {
		s = s.Background(lipgloss.Color(strconv.Itoa(c.BG)))
	}
	if c.Bold {
		s = s.Bold(true)
	}
	return s
}

// FileColors assigns name colors by file type, in LSCOLORS order.
type FileColors struct {
	Dir                 TypeColor // di
	Symlink             TypeColor // ln
	Socket              TypeColor // so
	Pipe                TypeColor // pi
	Executable          TypeColor // ex
	BlockDevice         TypeColor // bd
	CharDevice          TypeColor // cd
	Setuid              TypeColor // su
	Setgid              TypeColor // sg
	StickyOtherWritable TypeColor // tw
	OtherWritable       TypeColor // ow
}

// DefaultFileColors matches the BSD ls default LSCOLORS "exfxcxdxbxegedabagacad".
func DefaultFileColors() FileColors {
	return FileColors{
		Dir:                 TypeColor{FG: 4, BG: -1},
		Symlink:             TypeColor{FG: 5, BG: -1},
		Socket:              TypeColor{FG: 2, BG: -1},
		Pipe:                TypeColor{FG: 3, BG: -1},
		Executable:          TypeColor{FG: 1, BG: -1},
		BlockDevice:         TypeColor{FG: 4, BG: 6},
		CharDevice:          TypeColor{FG: 4, BG: 3},
		Setuid:              TypeColor{FG: 0, BG: 1},
		Setgid:              TypeColor{FG: 0, BG: 6},
		StickyOtherWritable: TypeColor{FG: 0, BG: 2},
		OtherWritable:       TypeColor{FG: 0, BG: 3},
	}
}

// ParseLSColors reads the BSD LSCOLORS format: eleven foreground and
// background letter pairs. Letters a-h select colors 0-7, x the default.
// An uppercase foreground letter is bold. Strings shorter than 22 letters
// are rejected.
func ParseLSColors(s string) (FileColors, bool) {
	if len(s) < 22 {
		return FileColors{}, false
	}
	pair := func(i int) TypeColor {
		fg, bold := bsdColor(s[2*i])
		bg, _ := bsdColor(s[2*i+1])
		return TypeColor{FG: fg, BG: bg, Bold: bold}
	}
	return FileColors{
		Dir:                 pair(0),
		Symlink:             pair(1),
		Socket:              pair(2),
		Pipe:                pair(3),
		Executable:          pair(4),
		BlockDevice:         pair(5),
		CharDevice:          pair(6),
		Setuid:              pair(7),
		Setgid:              pair(8),
		StickyOtherWritable: pair(9),
		OtherWritable:       pair(10),
	}, true
}

func bsdColor(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'h':
		return int(c - 'a'), false
	case c >= 'A' && c <= 'H':
		return int(c - 'A'), true
	}
	return -1, false
}

// ResolveFileColors picks the name colors. An explicit LSCOLORS value wins;
// the LSCOLORS environment variable is honored on macOS only, where ls
// itself reads it.
func ResolveFileColors(configured, env, goos string) FileColors {
	if configured != "" {
		if c, ok := ParseLSColors(configured); ok {
			return c
		}
	}
	if goos == "darwin" && env != "" {
		if c, ok := ParseLSColors(env); ok {
			return c
		}
	}
	return DefaultFileColors()
}

// For returns the color of e's name, or false for uncolored names.
func (c FileColors) For(e *entry.Entry) (TypeColor, bool) {
	mode := e.Mode
	switch mode & entry.ModeTypeMask {
	case entry.ModeDir:
		if mode&0o002 != 0 {
			if mode&entry.ModeSticky != 0 {
				return c.StickyOtherWritable, true
			}
			return c.OtherWritable, true
		}
		return c.Dir, true
	case entry.ModeSymlink:
		return c.Symlink, true
	case entry.ModeSocket:
		return c.Socket, true
	case entry.ModeFIFO:
		return c.Pipe, true
	}

	switch {
	case mode&entry.ModeSetuid != 0:
		return c.Setuid, true
	case mode&entry.ModeSetgid != 0:
		return c.Setgid, true
	case mode&0o111 != 0 && mode&entry.ModeTypeMask == entry.ModeRegular:
		return c.Executable, true
	}

	switch mode & entry.ModeTypeMask {
	case entry.ModeBlock:
		return c.BlockDevice, true
	case entry.ModeChar:
		return c.CharDevice, true
	}
	return TypeColor{}, false
}
