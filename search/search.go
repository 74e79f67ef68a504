// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// stackSize bounds the stack captured from a panicking worker.
const stackSize = 4 << 10

// CountLoopObstacles returns how many single-obstacle placements trap the
// agent in a loop. Candidates are split into contiguous chunks, one per
// worker, and each worker simulates its chunk on private grid clones.
//
// The first failure cancels the remaining workers and is returned:
// ErrBaselineLoops, ErrInvariantViolation, ErrWorkerFailure (as a
// *WorkerError) or the context's error.
func CountLoopObstacles(ctx context.Context, g *grid.Grid, opts ...Option) (int, error) {
	o := newOptions(opts)
	cands, err := Candidates(g)
	if err != nil {
		return 0, err
	}
	n, _, err := run(ctx, g, cands, o)
	return n, err
}

// Workers resolves a requested worker count against the candidate count:
// n <= 0 selects GOMAXPROCS, and the result lies in [1, candidates].
// Zero candidates need zero workers.
func Workers(n, candidates int) int {
	if candidates == 0 {
		return 0
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, candidates))
}

// run evaluates cands on g and returns the loop count and the number of
// workers used.
func run(ctx context.Context, g *grid.Grid, cands []grid.Position, o Options) (int, int, error) {
	workers := Workers(o.Workers, len(cands))
	log := o.Logger
	began := time.Now()

	logging.With(log.Debug(),
		logging.RunID(o.RunID),
		logging.Candidates(len(cands)),
		logging.Workers(workers),
	).Msg("search started")

	total, err := fanOut(ctx, g, Partition(cands, workers), o)
	elapsed := time.Since(began)
	o.Recorder.SearchFinished(ctx, workers, elapsed, err)
	if err != nil {
		logging.With(log.Error(),
			logging.RunID(o.RunID),
			logging.Workers(workers),
			logging.ErrorField(err),
		).Msg("search failed")
		return 0, workers, err
	}

	logging.With(log.Debug(),
		logging.RunID(o.RunID),
		logging.Loops(total),
		logging.Duration(elapsed),
	).Msg("search finished")
	return total, workers, nil
}

// fanOut runs one worker per chunk and sums their private counts.
func fanOut(ctx context.Context, g *grid.Grid, chunks [][]grid.Position, o Options) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	counts := make([]int, len(chunks))
	eg, ctx := errgroup.WithContext(ctx)

	for w, chunk := range chunks {
		eg.Go(func() (err error) {
			o.Recorder.WorkerStarted(ctx)
			defer o.Recorder.WorkerStopped(ctx)
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, stackSize)
					n := runtime.Stack(buf, false)
					err = &WorkerError{Worker: w, Panic: r, Stack: buf[:n]}
				}
			}()

			local := 0
			for _, p := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				looped, states, err := o.evaluate(g, p)
				if err != nil {
					return err
				}
				o.Recorder.CandidateEvaluated(ctx, looped, states)
				if looped {
					local++
				}
			}
			counts[w] = local

			logging.With(o.Logger.Debug(),
				logging.RunID(o.RunID),
				logging.Worker(w),
				logging.Candidates(len(chunk)),
				logging.Loops(local),
			).Msg("worker done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}
