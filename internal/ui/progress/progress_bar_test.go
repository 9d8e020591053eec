package progress

import "testing"

func TestProgressBar_New(t *testing.T) {
	pb := NewProgressBar(12, "my-repo")
	if pb.Total() != 12 {
		t.Errorf("expected total 12, got %d", pb.Total())
	}
}

func TestProgressBar_SetProgressBeforeStart(t *testing.T) {
	pb := NewProgressBar(10, "repo")
	// Should not panic when setting progress before Start()
	pb.SetProgress(5, "other-repo")
}

func TestProgressBar_StopBeforeStart(t *testing.T) {
	pb := NewProgressBar(10, "repo")
	// Stop without Start should not panic
	pb.Stop()
}

func TestSpinner_UpdateBeforeStart(t *testing.T) {
	s := NewSpinner("Fetching from origin...")
	s.UpdateMessage("Pulling latest changes...")
	s.Stop()
}
