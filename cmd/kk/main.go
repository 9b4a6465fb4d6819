package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dongminkim/kk/internal/log"
)

var version = "0.1.0"

// errUsage reports a command line that was rejected after usage was shown.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = log.Close()

	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "kk: %v\n", err)
		}
		os.Exit(1)
	}
	if helpShown {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kk [options] [PATH...]",
	Short: "A git-aware ls replacement",
	Long: `kk lists directories in long format and marks every entry with its
git status: clean, staged, changed, untracked or ignored. Directories show
the most significant status of anything below them.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	listAll         bool
	listAlmostAll   bool
	listHuman       bool
	listSI          bool
	listGroupDigits bool
	listDirectory   bool
	listNoDirectory bool
	listReverse     bool
	listSortSize    bool
	listSortTime    bool
	listSortCtime   bool
	listSortAtime   bool
	listUnsorted    bool
	listSortWord    string
	listNoVCS       bool
	listGroupDirs   bool
	listColor       string
	listExclude     []string
	listConfig      string
	listDebugLog    string
	listHelp        bool

	helpShown bool
)

func init() {
	rootCmd.Version = version

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&listAll, "all", "a", false, "list entries starting with .")
	flags.BoolVarP(&listAlmostAll, "almost-all", "A", false, "list all except . and ..")
	flags.BoolVarP(&listHuman, "human", "h", false, "show filesizes in human-readable format")
	flags.BoolVar(&listSI, "si", false, "with -h, use powers of 1000 not 1024")
	flags.BoolVar(&listGroupDigits, "group-digits", false, "separate thousands in sizes and totals")
	flags.BoolVarP(&listDirectory, "directory", "d", false, "list only directories")
	flags.BoolVarP(&listNoDirectory, "no-directory", "n", false, "do not list directories")
	flags.BoolVarP(&listReverse, "reverse", "r", false, "reverse sort order")
	flags.BoolVarP(&listSortSize, "sort-size", "S", false, "sort by size")
	flags.BoolVarP(&listSortTime, "sort-time", "t", false, "sort by time (modification time)")
	flags.BoolVarP(&listSortCtime, "sort-ctime", "c", false, "sort by ctime (inode change time)")
	flags.BoolVarP(&listSortAtime, "sort-atime", "u", false, "sort by atime (use or access time)")
	flags.BoolVarP(&listUnsorted, "unsorted", "U", false, "unsorted")
	flags.StringVar(&listSortWord, "sort", "", "sort by WORD: none (U), size (S), time (t), ctime or status (c), atime or access or use (u)")
	flags.BoolVar(&listNoVCS, "no-vcs", false, "do not get VCS status (much faster)")
	flags.BoolVar(&listGroupDirs, "group-directories-first", false, "group directories before files")
	flags.StringVar(&listColor, "color", "", "colorize output: auto, always or never")
	flags.StringArrayVar(&listExclude, "exclude", nil, "hide entries whose name matches REGEX (can be repeated)")
	flags.StringVar(&listConfig, "config", "", "read defaults from this YAML file")
	flags.StringVar(&listDebugLog, "debug-log", "", "write debug output to this file")
	flags.BoolVar(&listHelp, "help", false, "show this help")

	// The single-letter sort switches only exist in short form.
	for _, name := range []string{"sort-size", "sort-time", "sort-ctime", "sort-atime", "unsorted"} {
		_ = flags.MarkHidden(name)
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		printUsage(cmd.ErrOrStderr())
		helpShown = true
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "kk: %v\n", err)
		printUsage(cmd.ErrOrStderr())
		return errUsage
	})
}
