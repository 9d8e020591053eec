package git

import (
	"context"
	"fmt"
)

// FetchPrune synchronizes remote-tracking refs and prunes stale ones.
func FetchPrune(ctx context.Context, path string) error {
	if err := runGit(ctx, path, "fetch", "--prune"); err != nil {
		return fmt.Errorf("fetch from remote: %w", err)
	}
	return nil
}

// PullFFOnly fast-forwards branch from origin. Fails instead of creating a
// merge commit when the local branch has diverged.
func PullFFOnly(ctx context.Context, path, branch string) error {
	if err := ValidateRef(branch); err != nil {
		return err
	}
	if err := runGit(ctx, path, "pull", "--ff-only", "origin", branch); err != nil {
		return fmt.Errorf("pull %q from origin: %w", branch, err)
	}
	return nil
}
