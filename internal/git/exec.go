// Package git wraps the git CLI commands gup needs to update repositories.
//
// Every operation takes a context and a repository path, runs under the
// configured per-command timeout, and echoes the command via the context
// logger in verbose mode.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/gup/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command under the configured timeout.
func runGit(ctx context.Context, dir string, args ...string) error {
	_, err := outputGit(ctx, dir, args...)
	return err
}

// outputGit executes a git command under the configured timeout and returns
// trimmed stdout. Timeouts surface as a dedicated error message since the
// killed subprocess reports nothing useful itself.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	timeout := Timeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("git %s timed out after %s", strings.Join(args, " "), timeout)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
