// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/cycle"
	"github.com/katalvlaran/gridpatrol/grid"
)

// Candidates returns the cells where a new obstacle could change the
// agent's path: every distinct cell of the baseline walk except the start,
// in row-major order.
//
// Cells off the baseline walk are never reached, so an obstacle there
// leaves the walk unchanged and cannot create a loop.
func Candidates(g *grid.Grid) ([]grid.Position, error) {
	base, err := baseline(g)
	if err != nil {
		return nil, err
	}
	return candidatesOf(g, base), nil
}

// baseline traverses the unmodified grid and rejects a looping walk.
func baseline(g *grid.Grid) (cycle.Result, error) {
	res, err := cycle.Traverse(g)
	if err != nil {
		return cycle.Result{}, err
	}
	if res.Outcome == cycle.Looped {
		return cycle.Result{}, fmt.Errorf("%w: start %s", ErrBaselineLoops, g.Start())
	}
	return res, nil
}

func candidatesOf(g *grid.Grid, base cycle.Result) []grid.Position {
	cells := base.Distinct()
	start := g.Start().Position
	out := cells[:0]
	for _, p := range cells {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// evaluate is the default evaluator: clone g with an obstacle at p and
// traverse it without a trace.
func evaluate(g *grid.Grid, p grid.Position) (bool, int, error) {
	h, err := g.WithObstacle(p)
	if err != nil {
		return false, 0, fmt.Errorf("%w: candidate %s: %w", ErrInvariantViolation, p, err)
	}
	res, err := cycle.Traverse(h, cycle.WithoutTrace())
	if err != nil {
		return false, 0, fmt.Errorf("%w: candidate %s: %w", ErrInvariantViolation, p, err)
	}
	return res.Outcome == cycle.Looped, res.States, nil
}
