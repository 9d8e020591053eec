package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsRepo checks if a path is a git repository (has a .git dir or file).
func IsRepo(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}

// FindRepos returns paths to all git repositories that are direct children
// of basePath. Discovery is non-recursive: repositories nested inside a
// discovered repository are not reported. Results are in directory order.
func FindRepos(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", basePath, err)
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		repoPath := filepath.Join(basePath, entry.Name())
		if IsRepo(repoPath) {
			repos = append(repos, repoPath)
		}
	}

	return repos, nil
}
