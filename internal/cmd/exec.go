// Package cmd provides helpers for executing external commands with proper
// error handling and context cancellation.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/gup/internal/log"
)

// RunContext executes a command in dir (or the current directory if dir is
// empty) and returns stderr in the error message if it fails. The command is
// killed when the context is cancelled or its deadline expires.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails. The command is killed when the context is cancelled or
// its deadline expires.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		// Context errors take precedence: a killed process reports an
		// unhelpful "signal: killed" otherwise.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}

	log.FromContext(ctx).CommandOutput(string(out))

	return out, nil
}
