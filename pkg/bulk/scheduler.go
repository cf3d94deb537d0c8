package bulk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runConcurrently executes one task per chunk with at most maxWorkers in
// flight. It returns only after every task has produced its result; the
// slot a result lands in matches its task, but completion order between
// tasks is unconstrained.
//
// Tasks fold their own failures into the ChunkResult they return, so the
// group itself never observes an error.
func runConcurrently(ctx context.Context, tasks []func(context.Context) ChunkResult, maxWorkers int) []ChunkResult {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]ChunkResult, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = task(gctx)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
