package main

import (
	"fmt"
	"io"
)

const usage = `Usage: kk [options] DIR
Options:
	-a      --all           list entries starting with .
	-A      --almost-all    list all except . and ..
	-c                      sort by ctime (inode change time)
	-d      --directory     list only directories
	-n      --no-directory  do not list directories
	-h      --human         show filesizes in human-readable format
	        --si            with -h, use powers of 1000 not 1024
	        --group-digits  separate thousands in sizes and totals
	-r      --reverse       reverse sort order
	-S                      sort by size
	-t                      sort by time (modification time)
	-u                      sort by atime (use or access time)
	-U                      Unsorted
	        --sort WORD     sort by WORD: none (U), size (S),
	                        time (t), ctime or status (c),
	                        atime or access or use (u)
	        --no-vcs        do not get VCS status (much faster)
	        --group-directories-first
	                        list directories before files
	        --color WHEN    colorize output: auto, always, never
	        --exclude REGEX hide entries whose name matches REGEX
	        --config FILE   read defaults from FILE
	        --debug-log FILE
	                        write debug output to FILE
	        --version       print the version
	        --help          show this help
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}
