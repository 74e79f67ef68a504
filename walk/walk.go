// SPDX-License-Identifier: MIT

package walk

import "github.com/katalvlaran/gridpatrol/grid"

// Peek returns the cell one step ahead of a. The boolean is false when that
// cell would have a negative coordinate, i.e. the agent stands on the origin
// edge facing outwards.
func Peek(a grid.Agent) (grid.Position, bool) {
	dx, dy := a.Orientation.Delta()
	p := grid.Position{X: a.Position.X + dx, Y: a.Position.Y + dy}
	if p.X < 0 || p.Y < 0 {
		return grid.Position{}, false
	}
	return p, true
}

// Step applies the transition rule once. It returns false when the agent
// leaves the grid; the returned agent is then the zero value.
func Step(g *grid.Grid, a grid.Agent) (grid.Agent, bool) {
	next, ok := Peek(a)
	if !ok || !g.InBounds(next) {
		return grid.Agent{}, false
	}
	if g.IsObstacle(next) {
		return a.Turn(), true
	}
	return a.MoveTo(next), true
}

// Walker lazily yields the agent states of a patrol. The first call to Next
// yields the starting state; each further call advances by one Step.
// A Walker is not safe for concurrent use; create one per goroutine.
type Walker struct {
	g     *grid.Grid
	start grid.Agent
	cur   grid.Agent
	done  bool
	steps int
	begun bool
}

// New returns a Walker starting from g.Start().
func New(g *grid.Grid) *Walker {
	return From(g, g.Start())
}

// From returns a Walker starting from an arbitrary agent state.
func From(g *grid.Grid, start grid.Agent) *Walker {
	return &Walker{g: g, start: start, cur: start}
}

// Next yields the next agent state. It returns false once the agent has left
// the grid; every later call keeps returning false.
func (w *Walker) Next() (grid.Agent, bool) {
	if w.done {
		return grid.Agent{}, false
	}
	if w.begun {
		next, ok := Step(w.g, w.cur)
		if !ok {
			w.done = true
			return grid.Agent{}, false
		}
		w.cur = next
	}
	w.begun = true
	w.steps++
	return w.cur, true
}

// Reset rewinds the walker to its starting state.
func (w *Walker) Reset() {
	w.cur = w.start
	w.done = false
	w.begun = false
	w.steps = 0
}

// Steps returns how many states have been yielded since the last Reset.
func (w *Walker) Steps() int {
	return w.steps
}
