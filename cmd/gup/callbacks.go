package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gup/internal/log"
	"github.com/raphi011/gup/internal/ui/progress"
	"github.com/raphi011/gup/internal/update"
)

// progressEnabled reports whether animated progress UI should render.
// Progress goes to stderr, so it is suppressed when stderr is not a TTY.
func progressEnabled() bool {
	return !verbose && !quiet && isatty.IsTerminal(os.Stderr.Fd())
}

// newRepoCallbacks builds the callbacks for single-repository mode: a spinner
// showing the current step, step logging in verbose mode, nothing in quiet
// mode or when stderr is not a terminal.
func newRepoCallbacks(ctx context.Context) update.Callbacks {
	if verbose {
		return &logCallbacks{logger: log.FromContext(ctx)}
	}
	if progressEnabled() {
		return &spinnerCallbacks{spinner: progress.NewSpinner("Starting update...")}
	}
	return update.NopCallbacks{}
}

// newWorkspaceCallbacks builds the callbacks factory for workspace mode plus
// a stop function to tear down shared UI state after all updates finish.
func newWorkspaceCallbacks(ctx context.Context, total int) (update.CallbacksFactory, func()) {
	if verbose {
		logger := log.FromContext(ctx)
		return func(string) update.Callbacks {
			return &logCallbacks{logger: logger}
		}, func() {}
	}

	if progressEnabled() {
		shared := &workspaceProgress{
			bar: progress.NewProgressBar(total, "Updating repositories..."),
		}
		shared.bar.Start()
		return func(string) update.Callbacks {
			return &barCallbacks{shared: shared}
		}, shared.bar.Stop
	}

	return func(string) update.Callbacks {
		return update.NopCallbacks{}
	}, func() {}
}

// spinnerCallbacks renders single-repository progress as a spinner with the
// current step's message.
type spinnerCallbacks struct {
	update.NopCallbacks
	spinner *progress.Spinner
	name    string
}

func (c *spinnerCallbacks) OnUpdateStart(repoName string) {
	c.name = repoName
	c.spinner.Start()
}

func (c *spinnerCallbacks) OnStep(step update.Step) {
	c.spinner.UpdateMessage(fmt.Sprintf("%s: %s", c.name, step.Message()))
}

func (c *spinnerCallbacks) OnComplete(update.Result) {
	c.spinner.Stop()
}

// workspaceProgress is the progress-bar state shared by every repository's
// callbacks during a workspace update.
type workspaceProgress struct {
	bar       *progress.ProgressBar
	mu        sync.Mutex
	completed int
	failed    int
}

func (w *workspaceProgress) record(success bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.completed++
	if !success {
		w.failed++
	}

	msg := "Updating repositories..."
	if w.failed > 0 {
		msg = fmt.Sprintf("Updating repositories... (%d failed)", w.failed)
	}
	w.bar.SetProgress(w.completed, msg)
}

// barCallbacks feeds one repository's completion into the shared progress bar.
type barCallbacks struct {
	update.NopCallbacks
	shared *workspaceProgress
}

func (c *barCallbacks) OnCompletionStatus(success bool, _ error) {
	c.shared.record(success)
}

// logCallbacks logs each step through the context logger. Used in verbose
// mode, where updates run sequentially so the lines stay grouped per repo.
type logCallbacks struct {
	update.NopCallbacks
	logger *log.Logger
}

func (c *logCallbacks) OnUpdateStart(repoName string) {
	c.logger.Printf("%s\n", repoName)
}

func (c *logCallbacks) OnStep(step update.Step) {
	switch step {
	case update.StepStarted, update.StepCompleted:
		return
	}
	c.logger.Printf("  %s\n", step.Message())
}

func (c *logCallbacks) OnCompletionStatus(success bool, err error) {
	if !success {
		c.logger.Printf("  failed: %v\n", err)
	}
}
