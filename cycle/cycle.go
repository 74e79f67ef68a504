// SPDX-License-Identifier: MIT

package cycle

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/walk"
)

// Traverse walks g until the agent exits or repeats a state.
//
// The start state is recorded before the first step, so a walk that comes
// straight back to its own starting state is reported as Looped.
// Returns ErrNilGrid for a nil grid, ErrBadStart for a custom start outside
// the grid or with an unknown facing, and ErrStateBound if the visited set
// would outgrow the grid's state space.
func Traverse(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := g.Start()
	if o.HasStart {
		if !g.InBounds(o.Start.Position) || o.Start.Orientation > grid.Left {
			return Result{}, fmt.Errorf("%w: %d %d %s",
				ErrBadStart, o.Start.Position.X, o.Start.Position.Y, o.Start.Orientation)
		}
		start = o.Start
	}

	size := g.Size()
	limit := size.States()
	visited := make(map[grid.State]struct{}, min(limit, 1<<10))
	var trace []grid.Position

	w := walk.From(g, start)
	for {
		a, ok := w.Next()
		if !ok {
			return Result{Outcome: Exited, Trace: trace, States: len(visited), size: size}, nil
		}
		if _, seen := visited[a.State()]; seen {
			return Result{Outcome: Looped, States: len(visited), size: size}, nil
		}
		if len(visited) >= limit {
			return Result{}, fmt.Errorf("%w: %d states on a %dx%d grid",
				ErrStateBound, len(visited)+1, size.Width, size.Height)
		}
		visited[a.State()] = struct{}{}
		if o.KeepTrace {
			trace = append(trace, a.Position)
		}
		o.OnState(a)
	}
}
