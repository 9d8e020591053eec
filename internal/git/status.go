package git

import (
	"context"
	"fmt"
)

// HasUncommittedChanges reports whether the working tree is dirty, counting
// both modified tracked files and untracked files.
func HasUncommittedChanges(ctx context.Context, path string) (bool, error) {
	out, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("check for uncommitted changes: %w", err)
	}
	return out != "", nil
}
