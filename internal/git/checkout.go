package git

import (
	"context"
	"fmt"
)

// Checkout checks out a branch or commit.
func Checkout(ctx context.Context, path, ref string) error {
	if err := ValidateRef(ref); err != nil {
		return err
	}
	if err := runGit(ctx, path, "checkout", ref); err != nil {
		return fmt.Errorf("checkout %q: %w", ref, err)
	}
	return nil
}
