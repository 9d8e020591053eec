package update

import (
	"context"
	"sync"
)

// DefaultWorkers is the default worker-pool size for workspace updates.
// Far above CPU count because the work is I/O-bound: each worker spends its
// time waiting on a git subprocess.
const DefaultWorkers = 60

// Options controls how a workspace update is scheduled.
type Options struct {
	// Workers is the worker-pool size. DefaultWorkers when <= 0.
	Workers int

	// Sequential updates repositories one at a time, in input order.
	// Used in verbose mode to keep interleaved command logs readable.
	Sequential bool
}

// CallbacksFactory builds the Callbacks instance for one repository path.
// It is invoked once per path, in input order, on the calling goroutine, so
// implementations can thread shared workspace state (e.g. a progress bar)
// into each instance without synchronizing construction.
type CallbacksFactory func(path string) Callbacks

// UpdateAll updates every repository in paths and returns one Result per
// path, in input order regardless of completion order. A failure in one
// repository never aborts or blocks the others; each pipeline runs to its
// own conclusion.
func (u *Updater) UpdateAll(ctx context.Context, paths []string, makeCallbacks CallbacksFactory, opts Options) []Result {
	results := make([]Result, len(paths))

	if opts.Sequential {
		for i, path := range paths {
			results[i] = u.Update(ctx, path, makeCallbacks(path))
		}
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, path := range paths {
		cb := makeCallbacks(path)

		wg.Add(1)
		go func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = u.Update(ctx, path, cb)
		}()
	}

	wg.Wait()

	return results
}
