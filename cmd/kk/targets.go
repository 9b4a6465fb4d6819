package main

import "os"

// resolveTargets splits command line paths into directories to list and
// loose file arguments. File arguments are listed together under a "."
// target placed first. With -d every path is a file argument.
func resolveTargets(paths []string, directory bool) (dirs, files []string) {
	switch {
	case len(paths) == 0:
		dirs = append(dirs, ".")
	case directory:
		dirs = append(dirs, ".")
		files = append(files, paths...)
	default:
		for _, p := range paths {
			if isDir(p) {
				dirs = append(dirs, p)
				continue
			}
			if len(dirs) == 0 || dirs[0] != "." {
				dirs = append([]string{"."}, dirs...)
			}
			files = append(files, p)
		}
	}
	return dirs, files
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
