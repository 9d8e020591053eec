// Package update implements the per-repository update pipeline and the
// workspace scheduler that fans it out over many repositories.
//
// An update records the original HEAD, shelves uncommitted changes, brings
// the primary branch (master or main) up to date with origin, and restores
// the original state. The pipeline is fail-fast: the first failing step
// aborts the rest, and the failure is attributed to that step.
package update

import (
	"context"
	"path/filepath"
	"time"

	"github.com/raphi011/gup/internal/git"
)

// Primary branch names, tried in order during checkout.
const (
	MasterBranch = "master"
	MainBranch   = "main"
)

// Git is the set of git operations the updater needs. The production
// implementation shells out to the git CLI; tests substitute a fake.
type Git interface {
	CurrentBranch(ctx context.Context, path string) (string, error)
	CurrentCommit(ctx context.Context, path string) (string, error)
	HasUncommittedChanges(ctx context.Context, path string) (bool, error)
	FetchPrune(ctx context.Context, path string) error
	Stash(ctx context.Context, path string) (created bool, err error)
	StashPop(ctx context.Context, path string) error
	Checkout(ctx context.Context, path, ref string) error
	PullFFOnly(ctx context.Context, path, branch string) error
}

// cliGit delegates to the git CLI wrappers.
type cliGit struct{}

func (cliGit) CurrentBranch(ctx context.Context, path string) (string, error) {
	return git.CurrentBranch(ctx, path)
}

func (cliGit) CurrentCommit(ctx context.Context, path string) (string, error) {
	return git.CurrentCommit(ctx, path)
}

func (cliGit) HasUncommittedChanges(ctx context.Context, path string) (bool, error) {
	return git.HasUncommittedChanges(ctx, path)
}

func (cliGit) FetchPrune(ctx context.Context, path string) error {
	return git.FetchPrune(ctx, path)
}

func (cliGit) Stash(ctx context.Context, path string) (bool, error) {
	return git.Stash(ctx, path)
}

func (cliGit) StashPop(ctx context.Context, path string) error {
	return git.StashPop(ctx, path)
}

func (cliGit) Checkout(ctx context.Context, path, ref string) error {
	return git.Checkout(ctx, path, ref)
}

func (cliGit) PullFFOnly(ctx context.Context, path, branch string) error {
	return git.PullFFOnly(ctx, path, branch)
}

// Updater runs the update pipeline against repositories.
type Updater struct {
	git Git
}

// New creates an Updater backed by the git CLI.
func New() *Updater {
	return &Updater{git: cliGit{}}
}

// Update runs the full pipeline for one repository and always returns a
// Result, success or failure. cb must not be nil; use NopCallbacks to
// observe nothing.
func (u *Updater) Update(ctx context.Context, path string, cb Callbacks) Result {
	start := time.Now()

	cb.OnUpdateStart(filepath.Base(path))

	res := Result{Path: path}
	res.Success, res.Failure = u.run(ctx, path, cb)
	res.Duration = time.Since(start)

	cb.OnStep(StepCompleted)
	cb.OnComplete(res)
	if res.OK() {
		cb.OnCompletionStatus(true, nil)
	} else {
		cb.OnCompletionStatus(false, res.Failure.Err)
	}

	return res
}

func (u *Updater) run(ctx context.Context, path string, cb Callbacks) (*Success, *Failure) {
	cb.OnStep(StepStarted)

	cb.OnStep(StepDetectingBranch)
	cb.OnStepExecute(StepDetectingBranch)
	branch, err := u.git.CurrentBranch(ctx, path)
	if err != nil {
		return nil, &Failure{Err: err, Step: StepDetectingBranch}
	}
	head := BranchHead(branch)
	if branch == git.DetachedHead {
		cb.OnStepExecute(StepDetectingBranch)
		sha, err := u.git.CurrentCommit(ctx, path)
		if err != nil {
			return nil, &Failure{Err: err, Step: StepDetectingBranch}
		}
		head = DetachedHead(sha)
	}

	cb.OnStep(StepCheckingChanges)
	cb.OnStepExecute(StepCheckingChanges)
	dirty, err := u.git.HasUncommittedChanges(ctx, path)
	if err != nil {
		return nil, &Failure{Err: err, Step: StepCheckingChanges}
	}

	// Fetch before any destructive local operation so the checkout and
	// pull below target fresh remote state.
	cb.OnStep(StepFetching)
	cb.OnStepExecute(StepFetching)
	if err := u.git.FetchPrune(ctx, path); err != nil {
		return nil, &Failure{Err: err, Step: StepFetching}
	}

	hadStash := false
	if dirty {
		cb.OnStep(StepStashing)
		cb.OnStepExecute(StepStashing)
		hadStash, err = u.git.Stash(ctx, path)
		if err != nil {
			return nil, &Failure{Err: err, Step: StepStashing}
		}
	}

	// Try master, then main, exactly once each. The second attempt's
	// error is the one surfaced.
	cb.OnStep(StepCheckingOut)
	cb.OnStepExecute(StepCheckingOut)
	master := MasterBranch
	if err := u.git.Checkout(ctx, path, MasterBranch); err != nil {
		cb.OnStepExecute(StepCheckingOut)
		if err := u.git.Checkout(ctx, path, MainBranch); err != nil {
			return nil, &Failure{Err: err, Step: StepCheckingOut}
		}
		master = MainBranch
	}

	cb.OnStep(StepPulling)
	cb.OnStepExecute(StepPulling)
	if err := u.git.PullFFOnly(ctx, path, master); err != nil {
		return nil, &Failure{Err: err, Step: StepPulling}
	}

	cb.OnStep(StepRestoringBranch)
	cb.OnStepExecute(StepRestoringBranch)
	if err := u.git.Checkout(ctx, path, head.Ref()); err != nil {
		return nil, &Failure{Err: err, Step: StepRestoringBranch}
	}

	// Pop only a stash this run created. On failure anywhere above, a
	// created stash stays on the stash list for the user to recover.
	if hadStash {
		cb.OnStep(StepPoppingStash)
		cb.OnStepExecute(StepPoppingStash)
		if err := u.git.StashPop(ctx, path); err != nil {
			return nil, &Failure{Err: err, Step: StepPoppingStash}
		}
	}

	return &Success{OriginalHead: head, MasterBranch: master, HadStash: hadStash}, nil
}
