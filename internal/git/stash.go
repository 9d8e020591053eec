package git

import (
	"context"
	"fmt"
	"strings"
)

// Stash shelves uncommitted tracked changes. Returns true if a stash entry
// was actually created: git exits zero but saves nothing when only untracked
// files are present, and popping a stash that was never created is invalid.
func Stash(ctx context.Context, path string) (bool, error) {
	out, err := outputGit(ctx, path, "stash")
	if err != nil {
		return false, fmt.Errorf("stash changes: %w", err)
	}
	return !strings.Contains(out, "No local changes to save"), nil
}

// StashPop applies and removes the most recent stash entry.
func StashPop(ctx context.Context, path string) error {
	if err := runGit(ctx, path, "stash", "pop"); err != nil {
		return fmt.Errorf("pop stash: %w", err)
	}
	return nil
}
