// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Position is a cell coordinate. X grows to the right, Y grows downwards,
// so (0,0) is the top-left corner of the input text.
type Position struct {
	X, Y int
}

// Less orders positions row-major: by Y, then by X.
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds the grid dimensions.
type Size struct {
	Width, Height int
}

// Contains reports whether p lies inside the grid.
// Complexity: O(1).
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (s Size) Index(p Position) int {
	return p.Y*s.Width + p.X
}

// Cells is Width×Height.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// States is the number of distinct agent states (cell × facing). Any walk on
// a grid of this size either exits or repeats a state within this many steps.
func (s Size) States() int {
	return s.Cells() * len(orientations)
}

// Agent is a full snapshot of the patrolling agent.
type Agent struct {
	Orientation Orientation
	Position    Position
}

// State is the key used for exact-repeat detection.
type State struct {
	Position    Position
	Orientation Orientation
}

// State returns the agent's visited-state key.
func (a Agent) State() State {
	return State{Position: a.Position, Orientation: a.Orientation}
}

// Turn returns a copy of the agent rotated clockwise in place.
func (a Agent) Turn() Agent {
	a.Orientation = a.Orientation.Rotate()
	return a
}

// MoveTo returns a copy of the agent standing on p with the same facing.
func (a Agent) MoveTo(p Position) Agent {
	a.Position = p
	return a
}

// String formats the agent as "x y Facing", the format used by trace dumps.
func (a Agent) String() string {
	return fmt.Sprintf("%d %d %s", a.Position.X, a.Position.Y, a.Orientation)
}
