package git

import (
	"os"
	"path/filepath"
	"testing"
)

// makeRepoDir creates dir/name/.git as a directory so it looks like a repo
// without needing the git binary.
func makeRepoDir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(path, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create fake repo: %v", err)
	}
	return path
}

func TestIsRepo(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	repo := makeRepoDir(t, dir, "repo")
	if !IsRepo(repo) {
		t.Errorf("IsRepo(%q) = false, want true", repo)
	}

	plain := filepath.Join(dir, "plain")
	if err := os.Mkdir(plain, 0o755); err != nil {
		t.Fatal(err)
	}
	if IsRepo(plain) {
		t.Errorf("IsRepo(%q) = true, want false", plain)
	}

	if IsRepo(filepath.Join(dir, "missing")) {
		t.Error("IsRepo(missing) = true, want false")
	}
}

func TestIsRepo_GitFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Worktrees have a .git file instead of a directory.
	wt := filepath.Join(dir, "worktree")
	if err := os.Mkdir(wt, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !IsRepo(wt) {
		t.Errorf("IsRepo(%q) = false, want true for .git file", wt)
	}
}

func TestFindRepos(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := makeRepoDir(t, dir, "a")
	c := makeRepoDir(t, dir, "c")
	if err := os.Mkdir(filepath.Join(dir, "b"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	repos, err := FindRepos(dir)
	if err != nil {
		t.Fatalf("FindRepos = %v, want nil", err)
	}

	want := []string{a, c}
	if len(repos) != len(want) {
		t.Fatalf("FindRepos returned %d repos %v, want %d", len(repos), repos, len(want))
	}
	for i := range want {
		if repos[i] != want[i] {
			t.Errorf("FindRepos[%d] = %q, want %q", i, repos[i], want[i])
		}
	}
}

func TestFindRepos_NotRecursive(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	outer := makeRepoDir(t, dir, "outer")
	makeRepoDir(t, outer, "nested")

	repos, err := FindRepos(dir)
	if err != nil {
		t.Fatalf("FindRepos = %v, want nil", err)
	}
	if len(repos) != 1 || repos[0] != outer {
		t.Errorf("FindRepos = %v, want only %q", repos, outer)
	}
}

func TestFindRepos_MissingDir(t *testing.T) {
	t.Parallel()
	_, err := FindRepos(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("FindRepos on missing dir = nil, want error")
	}
}
