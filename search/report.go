// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// Report summarizes one analysis of a grid.
type Report struct {
	RunID  string `json:"run_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// Obstacles is the number of obstacles in the input.
	Obstacles int `json:"obstacles"`
	// Visited is the number of distinct cells on the baseline walk.
	Visited int `json:"visited"`
	// Candidates is the number of placements simulated.
	Candidates int `json:"candidates"`
	// LoopObstacles is the number of placements that trap the agent.
	LoopObstacles int           `json:"loop_obstacles"`
	Workers       int           `json:"workers"`
	Elapsed       time.Duration `json:"elapsed_ns"`
}

// Analyze parses text, walks the baseline and counts loop-inducing
// obstacles. A RunID is generated unless WithRunID supplies one.
func Analyze(ctx context.Context, text string, opts ...Option) (Report, error) {
	began := time.Now()
	o := newOptions(opts)
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	g, err := grid.Parse(text)
	if err != nil {
		return Report{}, err
	}
	size := g.Size()
	logging.With(o.Logger.Info(),
		logging.RunID(o.RunID),
		logging.GridSize(size.Width, size.Height),
	).Msg("analysis started")

	base, err := baseline(g)
	if err != nil {
		logging.With(o.Logger.Error(), logging.RunID(o.RunID), logging.ErrorField(err)).Msg("baseline rejected")
		return Report{}, err
	}
	cands := candidatesOf(g, base)

	loops, workers, err := run(ctx, g, cands, o)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		RunID:         o.RunID,
		Width:         size.Width,
		Height:        size.Height,
		Obstacles:     g.ObstacleCount(),
		Visited:       base.Visited(),
		Candidates:    len(cands),
		LoopObstacles: loops,
		Workers:       workers,
		Elapsed:       time.Since(began),
	}
	logging.With(o.Logger.Info(),
		logging.RunID(r.RunID),
		logging.Visited(r.Visited),
		logging.Candidates(r.Candidates),
		logging.Loops(r.LoopObstacles),
		logging.Duration(r.Elapsed),
	).Msg("analysis finished")
	return r, nil
}
