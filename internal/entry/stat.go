package entry

import "os"

// rawStat carries the fields of a stat call that os.FileInfo does not expose.
type rawStat struct {
	mode   uint32
	nlink  uint64
	uid    uint32
	gid    uint32
	blocks int64
	atime  int64
	ctime  int64
}

// fallbackStat rebuilds what it can from the portable FileInfo.
func fallbackStat(info os.FileInfo) rawStat {
	mtime := info.ModTime().Unix()
	return rawStat{
		mode:   modeBits(info.Mode()),
		nlink:  1,
		blocks: (info.Size() + 511) / 512,
		atime:  mtime,
		ctime:  mtime,
	}
}

func modeBits(m os.FileMode) uint32 {
	bits := uint32(m.Perm())
	switch {
	case m&os.ModeDir != 0:
		bits |= ModeDir
	case m&os.ModeSymlink != 0:
		bits |= ModeSymlink
	case m&os.ModeNamedPipe != 0:
		bits |= ModeFIFO
	case m&os.ModeSocket != 0:
		bits |= ModeSocket
	case m&os.ModeDevice != 0 && m&os.ModeCharDevice != 0:
		bits |= ModeChar
	case m&os.ModeDevice != 0:
		bits |= ModeBlock
	default:
		bits |= ModeRegular
	}
	if m&os.ModeSetuid != 0 {
		bits |= ModeSetuid
	}
	if m&os.ModeSetgid != 0 {
		bits |= ModeSetgid
	}
	if m&os.ModeSticky != 0 {
		bits |= ModeSticky
	}
	return bits
}
