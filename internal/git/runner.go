// Package git implements the repository status source on top of the git
// command line tool.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/dongminkim/kk/internal/log"
)

// LookupPath is used to find the git executable. Tests may replace it.
var LookupPath = exec.LookPath

// Runner executes git subcommands.
type Runner struct {
	bin string
}

// NewRunner returns a runner using the git executable found on PATH.
func NewRunner() *Runner {
	bin := "git"
	if p, err := LookupPath("git"); err == nil {
		bin = p
	}
	return &Runner{bin: bin}
}

// Output runs git in dir and returns stdout. Any non-zero exit is an error.
func (r *Runner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	out, _, err := r.Run(ctx, dir, nil, args...)
	return out, err
}

// Run runs git in dir. Exit codes listed in okCodes are returned without an
// error so callers can branch on them.
func (r *Runner) Run(ctx context.Context, dir string, okCodes []int, args ...string) ([]byte, int, error) {
	command := strings.Join(args, " ")
	started := time.Now()

	// #nosec G204 -- arguments are built by this package, never by a shell
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = dir
	// Listing must not take the index lock or translate messages. Paths
	// are passed as literal names, never as pathspec patterns.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "GIT_LITERAL_PATHSPECS=1", "LC_ALL=C")

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if slices.Contains(okCodes, code) {
				log.Event("git", "ok", "exit", code, "took", time.Since(started), "cwd", dir, "args", command)
				return out, code, nil
			}
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail == "" {
				detail = fmt.Sprintf("exit %d", code)
			}
			log.Event("git", "error", "exit", code, "took", time.Since(started), "cwd", dir, "args", command, "stderr", detail)
			return nil, code, fmt.Errorf("git %s: %s", command, detail)
		}
		log.Event("git", "error", "took", time.Since(started), "cwd", dir, "args", command, "err", err)
		return nil, -1, fmt.Errorf("git %s: %w", command, err)
	}

	log.Event("git", "ok", "exit", 0, "took", time.Since(started), "bytes", len(out), "cwd", dir, "args", command)
	return out, 0, nil
}
