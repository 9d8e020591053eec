package update

// Callbacks lets observers (progress bars, verbose loggers, test harnesses)
// watch an update without coupling the state machine to any rendering. All
// hooks are invoked synchronously from the goroutine running the update.
//
// OnStep and OnComplete carry the information most observers need; the rest
// exist for verbose logging and status lines. Embed NopCallbacks to
// implement only the hooks you care about.
type Callbacks interface {
	// OnUpdateStart is called once, before the first step.
	OnUpdateStart(repoName string)

	// OnStep is called when the update enters a step.
	OnStep(step Step)

	// OnStepExecute is called immediately before each underlying git
	// command runs. A step may execute more than one command.
	OnStepExecute(step Step)

	// OnComplete is called once with the final result.
	OnComplete(result Result)

	// OnCompletionStatus is called once with a simplified signal for
	// status lines: err is nil on success.
	OnCompletionStatus(success bool, err error)
}

// NopCallbacks implements Callbacks with no-ops.
type NopCallbacks struct{}

func (NopCallbacks) OnUpdateStart(string)           {}
func (NopCallbacks) OnStep(Step)                    {}
func (NopCallbacks) OnStepExecute(Step)             {}
func (NopCallbacks) OnComplete(Result)              {}
func (NopCallbacks) OnCompletionStatus(bool, error) {}

var _ Callbacks = NopCallbacks{}
