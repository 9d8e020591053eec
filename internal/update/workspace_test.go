package update

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestUpdateAll_PreservesInputOrder(t *testing.T) {
	t.Parallel()
	g := newFakeGit()

	// Make earlier repos finish last so completion order is the reverse
	// of input order.
	delays := map[string]time.Duration{
		"/ws/a": 60 * time.Millisecond,
		"/ws/b": 30 * time.Millisecond,
		"/ws/c": 0,
	}
	g.hook = func(path, op string) {
		if op == "fetch" {
			time.Sleep(delays[path])
		}
	}

	u := &Updater{git: g}
	paths := []string{"/ws/a", "/ws/b", "/ws/c"}

	results := u.UpdateAll(context.Background(), paths, func(string) Callbacks {
		return NopCallbacks{}
	}, Options{Workers: 3})

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, path := range paths {
		if results[i].Path != path {
			t.Errorf("results[%d].Path = %q, want %q", i, results[i].Path, path)
		}
		if !results[i].OK() {
			t.Errorf("results[%d] failed: %v", i, results[i].Failure.Err)
		}
	}
}

func TestUpdateAll_FailureIsolation(t *testing.T) {
	t.Parallel()
	g := newFakeGit()
	g.failAt("/ws/b", "fetch", errors.New("remote removed"))
	u := &Updater{git: g}

	paths := []string{"/ws/a", "/ws/b", "/ws/c"}
	results := u.UpdateAll(context.Background(), paths, func(string) Callbacks {
		return NopCallbacks{}
	}, Options{})

	if !results[0].OK() || !results[2].OK() {
		t.Error("healthy repos affected by another repo's failure")
	}
	if results[1].OK() {
		t.Fatal("failing repo reported success")
	}
	if results[1].Failure.Step != StepFetching {
		t.Errorf("failure step = %v, want Fetching", results[1].Failure.Step)
	}
	if ExitCode(results) != ExitPartialFailure {
		t.Errorf("ExitCode = %d, want %d", ExitCode(results), ExitPartialFailure)
	}
}

func TestUpdateAll_Sequential_NeverOverlaps(t *testing.T) {
	t.Parallel()
	g := newFakeGit()

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	g.hook = func(_, op string) {
		switch op {
		case "branch":
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()
		case "checkout feature":
			mu.Lock()
			inFlight--
			mu.Unlock()
		}
		time.Sleep(time.Millisecond)
	}

	u := &Updater{git: g}
	var paths []string
	for i := range 5 {
		paths = append(paths, fmt.Sprintf("/ws/repo%d", i))
	}

	u.UpdateAll(context.Background(), paths, func(string) Callbacks {
		return NopCallbacks{}
	}, Options{Sequential: true})

	if maxInFlight != 1 {
		t.Errorf("max repositories in flight = %d, want 1 in sequential mode", maxInFlight)
	}
}

func TestUpdateAll_BoundedWorkers(t *testing.T) {
	t.Parallel()
	g := newFakeGit()

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	g.hook = func(_, op string) {
		switch op {
		case "branch":
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
		case "checkout feature":
			mu.Lock()
			inFlight--
			mu.Unlock()
		}
	}

	u := &Updater{git: g}
	var paths []string
	for i := range 12 {
		paths = append(paths, fmt.Sprintf("/ws/repo%d", i))
	}

	u.UpdateAll(context.Background(), paths, func(string) Callbacks {
		return NopCallbacks{}
	}, Options{Workers: 2})

	if maxInFlight > 2 {
		t.Errorf("max repositories in flight = %d, want <= 2", maxInFlight)
	}
	if maxInFlight < 2 {
		t.Logf("max in flight = %d (pool underutilized, not an error)", maxInFlight)
	}
}

func TestUpdateAll_FactoryPerPath(t *testing.T) {
	t.Parallel()
	g := newFakeGit()
	u := &Updater{git: g}

	var mu sync.Mutex
	made := map[string]int{}

	paths := []string{"/ws/a", "/ws/b", "/ws/c"}
	u.UpdateAll(context.Background(), paths, func(path string) Callbacks {
		mu.Lock()
		made[path]++
		mu.Unlock()
		return NopCallbacks{}
	}, Options{})

	for _, path := range paths {
		if made[path] != 1 {
			t.Errorf("factory invoked %d times for %q, want 1", made[path], path)
		}
	}
}

func TestUpdateAll_Empty(t *testing.T) {
	t.Parallel()
	u := &Updater{git: newFakeGit()}

	results := u.UpdateAll(context.Background(), nil, func(string) Callbacks {
		return NopCallbacks{}
	}, Options{})

	if len(results) != 0 {
		t.Errorf("got %d results for empty workspace, want 0", len(results))
	}
	if ExitCode(results) != ExitSuccess {
		t.Errorf("ExitCode(empty) = %d, want %d", ExitCode(results), ExitSuccess)
	}
}
