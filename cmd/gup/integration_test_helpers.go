//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gup/internal/config"
	"github.com/raphi011/gup/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs a git command in dir and returns its output.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupUpstream creates an upstream repo at dir/<name>-upstream with an
// initial commit on the given primary branch. Clones fetch and pull from it.
func setupUpstream(t *testing.T, dir, name, primaryBranch string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	upstreamPath := filepath.Join(dir, name+"-upstream")
	if err := os.MkdirAll(upstreamPath, 0755); err != nil {
		t.Fatalf("failed to create upstream dir: %v", err)
	}

	runGit(t, upstreamPath, "init", "-b", primaryBranch)
	runGit(t, upstreamPath, "config", "user.email", "test@test.com")
	runGit(t, upstreamPath, "config", "user.name", "Test User")
	runGit(t, upstreamPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(upstreamPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGit(t, upstreamPath, "add", "README.md")
	runGit(t, upstreamPath, "commit", "-m", "Initial commit")

	return upstreamPath
}

// cloneRepo clones upstream into dir/<name> and returns the clone path.
func cloneRepo(t *testing.T, upstream, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	runGit(t, dir, "clone", upstream, repoPath)
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")
	return repoPath
}

// advanceUpstream commits a new file on the upstream's current branch, so
// clones are behind until they pull.
func advanceUpstream(t *testing.T, upstreamPath, filename string) {
	t.Helper()

	filePath := filepath.Join(upstreamPath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGit(t, upstreamPath, "add", filename)
	runGit(t, upstreamPath, "commit", "-m", "Add "+filename)
}

// makeDirty modifies a tracked file so the repo has uncommitted changes that
// a plain `git stash` picks up.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("local edit\n"), 0644); err != nil {
		t.Fatalf("failed to modify README: %v", err)
	}
}

// currentBranch returns the current branch name ("HEAD" when detached).
func currentBranch(t *testing.T, repoPath string) string {
	t.Helper()
	return strings.TrimSpace(runGit(t, repoPath, "rev-parse", "--abbrev-ref", "HEAD"))
}

// revParse returns the commit SHA for a ref.
func revParse(t *testing.T, repoPath, ref string) string {
	t.Helper()
	return strings.TrimSpace(runGit(t, repoPath, "rev-parse", ref))
}

// runGup executes the root command in-process and returns the exit code.
// Tests using it must not run in parallel: it mutates package-level flag
// state shared by the command.
func runGup(t *testing.T, args ...string) int {
	t.Helper()

	verbose, quiet, jobs, dirFlag, exitCode = false, false, 0, "", 0
	c := config.Default()
	cfg = &c

	ctx := output.WithPrinter(context.Background(), io.Discard)
	rootCmd.SetContext(ctx)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("gup %v failed: %v", args, err)
	}
	return exitCode
}
