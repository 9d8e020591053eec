package git

import (
	"context"
	"fmt"
)

// DetachedHead is what rev-parse --abbrev-ref reports when no branch is
// checked out.
const DetachedHead = "HEAD"

// CurrentBranch returns the name of the currently checked out branch.
// Returns DetachedHead when the repository is in detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("detect current branch: %w", err)
	}
	return out, nil
}

// CurrentCommit returns the SHA of the currently checked out commit.
func CurrentCommit(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("detect current commit: %w", err)
	}
	return out, nil
}
