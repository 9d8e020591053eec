package update

import (
	"errors"
	"testing"
)

func ok(path string) Result {
	return Result{Path: path, Success: &Success{MasterBranch: "master"}}
}

func failed(path string) Result {
	return Result{Path: path, Failure: &Failure{Err: errors.New("x"), Step: StepFetching}}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		results []Result
		want    int
	}{
		{"empty", nil, ExitSuccess},
		{"all succeeded", []Result{ok("a"), ok("b")}, ExitSuccess},
		{"mixed", []Result{ok("a"), failed("b")}, ExitPartialFailure},
		{"all failed", []Result{failed("a"), failed("b")}, ExitTotalFailure},
		{"single failure", []Result{failed("a")}, ExitTotalFailure},
		{"single success", []Result{ok("a")}, ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.results); got != tt.want {
				t.Errorf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResult_Name(t *testing.T) {
	t.Parallel()
	r := ok("/home/user/src/my-repo")
	if got := r.Name(); got != "my-repo" {
		t.Errorf("Name = %q, want my-repo", got)
	}
}

func TestOriginalHead(t *testing.T) {
	t.Parallel()

	b := BranchHead("feature")
	if b.Detached() {
		t.Error("branch head reported detached")
	}
	if b.Ref() != "feature" || b.Branch() != "feature" {
		t.Errorf("branch head Ref/Branch = %q/%q, want feature", b.Ref(), b.Branch())
	}
	if b.String() != "feature" {
		t.Errorf("branch head String = %q, want feature", b.String())
	}

	d := DetachedHead("abc1234")
	if !d.Detached() {
		t.Error("detached head not reported detached")
	}
	if d.Ref() != "abc1234" || d.Commit() != "abc1234" {
		t.Errorf("detached head Ref/Commit = %q/%q, want abc1234", d.Ref(), d.Commit())
	}
	if d.String() != "detached at abc1234" {
		t.Errorf("detached head String = %q", d.String())
	}
}
