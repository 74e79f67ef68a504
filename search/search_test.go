// SPDX-License-Identifier: MIT

package search_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpatrol/builder"
	"github.com/katalvlaran/gridpatrol/cycle"
	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/internal/logging"
	"github.com/katalvlaran/gridpatrol/search"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// box exits left from (0,2); blocking (0,2) is its only loop.
const box = ".#..\n...#\n.^..\n..#.\n"

// trapped loops in place without any added obstacle.
const trapped = ".#.\n#^#\n.#.\n"

func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

// bruteForce counts loops sequentially without the coordinator.
func bruteForce(t testing.TB, g *grid.Grid) int {
	t.Helper()
	cands, err := search.Candidates(g)
	require.NoError(t, err)
	n := 0
	for _, p := range cands {
		h, err := g.WithObstacle(p)
		require.NoError(t, err)
		res, err := cycle.Traverse(h, cycle.WithoutTrace())
		require.NoError(t, err)
		if res.Outcome == cycle.Looped {
			n++
		}
	}
	return n
}

// TestCandidates_Sample checks count, order and start exclusion.
func TestCandidates_Sample(t *testing.T) {
	g := mustParse(t, sample)
	cands, err := search.Candidates(g)
	require.NoError(t, err)
	assert.Len(t, cands, 40)
	assert.NotContains(t, cands, g.Start().Position)
	for i := 1; i < len(cands); i++ {
		assert.True(t, cands[i-1].Less(cands[i]), "not row-major at %d", i)
	}
	for _, p := range cands {
		assert.False(t, g.IsObstacle(p))
	}
}

// TestCandidates_Errors covers nil and looping baselines.
func TestCandidates_Errors(t *testing.T) {
	_, err := search.Candidates(nil)
	assert.ErrorIs(t, err, cycle.ErrNilGrid)

	_, err = search.Candidates(mustParse(t, trapped))
	assert.ErrorIs(t, err, search.ErrBaselineLoops)
}

// TestCountLoopObstacles_Fixtures covers the known grids.
func TestCountLoopObstacles_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"Sample", sample, 6},
		{"Box", box, 1},
		{"OpenTwoByTwo", "..\n^.\n", 0},
		{"SingleCell", "^\n", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := search.CountLoopObstacles(context.Background(), mustParse(t, tc.text))
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestCountLoopObstacles_WorkerInvariance compares every worker count
// against a sequential count on random grids.
func TestCountLoopObstacles_WorkerInvariance(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 30; seed++ {
		text, err := builder.Patrol(14, 11, builder.WithSeed(seed), builder.WithDensity(0.12))
		require.NoError(t, err)
		g := mustParse(t, text)
		if _, err := search.Candidates(g); errors.Is(err, search.ErrBaselineLoops) {
			continue
		}
		want := bruteForce(t, g)
		for w := 1; w <= 8; w++ {
			got, err := search.CountLoopObstacles(context.Background(), g, search.WithWorkers(w))
			require.NoError(t, err)
			assert.Equal(t, want, got, "seed %d workers %d", seed, w)
		}
		checked++
	}
	assert.Positive(t, checked)
}

// TestCountLoopObstacles_BaselineLoops is fatal before any worker starts.
func TestCountLoopObstacles_BaselineLoops(t *testing.T) {
	n, err := search.CountLoopObstacles(context.Background(), mustParse(t, trapped))
	assert.ErrorIs(t, err, search.ErrBaselineLoops)
	assert.Zero(t, n)
}

// TestCountLoopObstacles_Canceled returns the context error unchanged.
func TestCountLoopObstacles_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.CountLoopObstacles(ctx, mustParse(t, sample))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCountLoopObstacles_WorkerPanic converts a panic into ErrWorkerFailure.
func TestCountLoopObstacles_WorkerPanic(t *testing.T) {
	g := mustParse(t, sample)
	bad := grid.Position{X: 3, Y: 6}
	eval := func(h *grid.Grid, p grid.Position) (bool, int, error) {
		if p == bad {
			panic("boom")
		}
		return search.ExportedEvaluate(h, p)
	}

	_, err := search.CountLoopObstacles(context.Background(), g,
		search.WithWorkers(4), search.ExportedWithEvaluator(eval))
	require.ErrorIs(t, err, search.ErrWorkerFailure)

	var we *search.WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "boom", we.Panic)
	assert.GreaterOrEqual(t, we.Worker, 0)
	assert.Less(t, we.Worker, 4)
	assert.NotEmpty(t, we.Stack)
	assert.Contains(t, we.Error(), "boom")
}

// TestEvaluate_InvariantViolation rejects a candidate on the start cell.
func TestEvaluate_InvariantViolation(t *testing.T) {
	g := mustParse(t, sample)
	_, _, err := search.ExportedEvaluate(g, g.Start().Position)
	assert.ErrorIs(t, err, search.ErrInvariantViolation)
	assert.ErrorIs(t, err, grid.ErrStartCell)

	_, _, err = search.ExportedEvaluate(g, grid.Position{X: 4, Y: 0})
	assert.ErrorIs(t, err, grid.ErrObstacleExists)
}

// TestCountLoopObstacles_EvaluatorError aborts the search.
func TestCountLoopObstacles_EvaluatorError(t *testing.T) {
	g := mustParse(t, sample)
	eval := func(*grid.Grid, grid.Position) (bool, int, error) {
		return false, 0, search.ErrInvariantViolation
	}
	_, err := search.CountLoopObstacles(context.Background(), g, search.ExportedWithEvaluator(eval))
	assert.ErrorIs(t, err, search.ErrInvariantViolation)
}

type countingRecorder struct {
	evaluated, looped, started, stopped, finished atomic.Int64
	lastErr                                       atomic.Value
}

func (r *countingRecorder) CandidateEvaluated(_ context.Context, looped bool, states int) {
	r.evaluated.Add(1)
	if looped {
		r.looped.Add(1)
	}
}
func (r *countingRecorder) WorkerStarted(context.Context) { r.started.Add(1) }
func (r *countingRecorder) WorkerStopped(context.Context) { r.stopped.Add(1) }
func (r *countingRecorder) SearchFinished(_ context.Context, _ int, _ time.Duration, err error) {
	r.finished.Add(1)
	if err != nil {
		r.lastErr.Store(err)
	}
}

// TestCountLoopObstacles_Recorder checks every measurement arrives.
func TestCountLoopObstacles_Recorder(t *testing.T) {
	rec := &countingRecorder{}
	n, err := search.CountLoopObstacles(context.Background(), mustParse(t, sample),
		search.WithWorkers(3), search.WithMetrics(rec))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.EqualValues(t, 40, rec.evaluated.Load())
	assert.EqualValues(t, 6, rec.looped.Load())
	assert.EqualValues(t, 3, rec.started.Load())
	assert.EqualValues(t, 3, rec.stopped.Load())
	assert.EqualValues(t, 1, rec.finished.Load())
	assert.Nil(t, rec.lastErr.Load())
}

// TestAnalyze_Sample checks the report for the sample grid.
func TestAnalyze_Sample(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New(logging.Config{Level: "debug", Format: "json", Output: buf})

	r, err := search.Analyze(context.Background(), sample,
		search.WithWorkers(2), search.WithLogger(logger), search.WithRunID("run-42"))
	require.NoError(t, err)
	assert.Equal(t, search.Report{
		RunID:         "run-42",
		Width:         10,
		Height:        10,
		Obstacles:     8,
		Visited:       41,
		Candidates:    40,
		LoopObstacles: 6,
		Workers:       2,
		Elapsed:       r.Elapsed,
	}, r)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-42"`)
	assert.Contains(t, out, "analysis finished")
	assert.Contains(t, out, "worker done")
	assert.Contains(t, out, `"loops":6`)
}

// TestAnalyze_GeneratesRunID fills a fresh ID per call.
func TestAnalyze_GeneratesRunID(t *testing.T) {
	a, err := search.Analyze(context.Background(), box)
	require.NoError(t, err)
	b, err := search.Analyze(context.Background(), box)
	require.NoError(t, err)
	assert.Len(t, a.RunID, 36)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, 5, a.Visited)
	assert.Equal(t, 4, a.Candidates)
	assert.Equal(t, 1, a.LoopObstacles)
}

// TestAnalyze_Errors passes parse and baseline errors through.
func TestAnalyze_Errors(t *testing.T) {
	_, err := search.Analyze(context.Background(), "...\n...\n")
	assert.ErrorIs(t, err, grid.ErrMissingAgent)

	_, err = search.Analyze(context.Background(), trapped)
	assert.ErrorIs(t, err, search.ErrBaselineLoops)
}

// TestOptions_NilPanics verifies option constructors reject nil.
func TestOptions_NilPanics(t *testing.T) {
	assert.Panics(t, func() { search.WithLogger(nil) })
	assert.Panics(t, func() { search.WithMetrics(nil) })
}
