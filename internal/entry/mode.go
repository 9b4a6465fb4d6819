package entry

// Raw st_mode bits. Values are identical across the unix platforms kk runs on.
const (
	ModeTypeMask uint32 = 0o170000
	ModeSocket   uint32 = 0o140000
	ModeSymlink  uint32 = 0o120000
	ModeRegular  uint32 = 0o100000
	ModeBlock    uint32 = 0o060000
	ModeDir      uint32 = 0o040000
	ModeChar     uint32 = 0o020000
	ModeFIFO     uint32 = 0o010000

	ModeSetuid uint32 = 0o4000
	ModeSetgid uint32 = 0o2000
	ModeSticky uint32 = 0o1000
)

// FormatPermissions renders mode as a ten character string such as "drwxr-xr-x".
func FormatPermissions(mode uint32) string {
	var b [10]byte

	switch mode & ModeTypeMask {
	case ModeDir:
		b[0] = 'd'
	case ModeSymlink:
		b[0] = 'l'
	case ModeBlock:
		b[0] = 'b'
	case ModeChar:
		b[0] = 'c'
	case ModeFIFO:
		b[0] = 'p'
	case ModeSocket:
		b[0] = 's'
	default:
		b[0] = '-'
	}

	b[1] = bit(mode, 0o400, 'r')
	b[2] = bit(mode, 0o200, 'w')
	b[3] = special(mode, ModeSetuid, 0o100, 's', 'S')
	b[4] = bit(mode, 0o040, 'r')
	b[5] = bit(mode, 0o020, 'w')
	b[6] = special(mode, ModeSetgid, 0o010, 's', 'S')
	b[7] = bit(mode, 0o004, 'r')
	b[8] = bit(mode, 0o002, 'w')
	b[9] = special(mode, ModeSticky, 0o001, 't', 'T')

	return string(b[:])
}

func bit(mode, mask uint32, c byte) byte {
	if mode&mask != 0 {
		return c
	}
	return '-'
}

func special(mode, flag, exec uint32, withExec, withoutExec byte) byte {
	switch {
	case mode&flag != 0 && mode&exec != 0:
		return withExec
	case mode&flag != 0:
		return withoutExec
	case mode&exec != 0:
		return 'x'
	default:
		return '-'
	}
}
