package update

// Step identifies where a repository's update currently is. Steps are used
// both for progress reporting and for attributing failures.
type Step int

const (
	StepStarted Step = iota
	StepDetectingBranch
	StepCheckingChanges
	StepFetching
	StepStashing
	StepCheckingOut
	StepPulling
	StepRestoringBranch
	StepPoppingStash
	StepCompleted
)

// String returns a short identifier for the step. Steps added in the future
// render as "unknown" rather than panicking, so consumers stay forward
// compatible.
func (s Step) String() string {
	switch s {
	case StepStarted:
		return "Started"
	case StepDetectingBranch:
		return "DetectingBranch"
	case StepCheckingChanges:
		return "CheckingChanges"
	case StepFetching:
		return "Fetching"
	case StepStashing:
		return "Stashing"
	case StepCheckingOut:
		return "CheckingOut"
	case StepPulling:
		return "Pulling"
	case StepRestoringBranch:
		return "RestoringBranch"
	case StepPoppingStash:
		return "PoppingStash"
	case StepCompleted:
		return "Completed"
	default:
		return "unknown"
	}
}

// Message returns a human-readable progress message for the step.
func (s Step) Message() string {
	switch s {
	case StepStarted:
		return "Starting update..."
	case StepDetectingBranch:
		return "Detecting current branch..."
	case StepCheckingChanges:
		return "Checking for uncommitted changes..."
	case StepFetching:
		return "Fetching from origin..."
	case StepStashing:
		return "Stashing uncommitted changes..."
	case StepCheckingOut:
		return "Checking out the primary branch..."
	case StepPulling:
		return "Pulling the primary branch..."
	case StepRestoringBranch:
		return "Restoring original branch..."
	case StepPoppingStash:
		return "Restoring stashed changes..."
	case StepCompleted:
		return "Completed"
	default:
		return "Working..."
	}
}
