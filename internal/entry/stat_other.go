//go:build !linux && !darwin && !freebsd

package entry

import "os"

func statOf(info os.FileInfo) rawStat {
	return fallbackStat(info)
}
