package update

import (
	"path/filepath"
	"time"
)

// Success describes a completed update.
type Success struct {
	OriginalHead OriginalHead
	MasterBranch string // the primary branch that was updated: "master" or "main"
	HadStash     bool   // a stash was created and popped
}

// Failure describes an update that aborted at a step.
type Failure struct {
	Err  error
	Step Step
}

// Result is the outcome of updating one repository. Exactly one of Success
// and Failure is set.
type Result struct {
	Path     string
	Success  *Success
	Failure  *Failure
	Duration time.Duration
}

// OK reports whether the update succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Name returns the repository's directory name.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// Exit codes for the aggregate outcome of a run.
const (
	ExitSuccess        = 0 // nothing to do, or every repository succeeded
	ExitPartialFailure = 1 // some repositories failed
	ExitTotalFailure   = 2 // every repository failed
)

// ExitCode reduces a set of results to a process exit code.
func ExitCode(results []Result) int {
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	switch {
	case failed == 0:
		return ExitSuccess
	case failed == len(results):
		return ExitTotalFailure
	default:
		return ExitPartialFailure
	}
}
