//go:build darwin || freebsd

package entry

import (
	"os"
	"syscall"
)

func statOf(info os.FileInfo) rawStat {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fallbackStat(info)
	}
	return rawStat{
		mode:   uint32(stat.Mode),
		nlink:  uint64(stat.Nlink),
		uid:    stat.Uid,
		gid:    stat.Gid,
		blocks: int64(stat.Blocks),
		atime:  int64(stat.Atimespec.Sec),
		ctime:  int64(stat.Ctimespec.Sec),
	}
}
