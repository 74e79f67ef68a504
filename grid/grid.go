// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"sort"
	"strings"
)

const (
	obstacleMarker = '#'
	emptyMarker    = '.'
)

// Grid is the parsed patrol map. It is immutable once built: every method
// either reads or returns a new Grid, so one *Grid may be shared freely
// between goroutines.
type Grid struct {
	size      Size
	obstacles map[Position]struct{}
	start     Agent
}

// Parse builds a Grid from puzzle text. Rows are separated by '\n' (a
// trailing newline and '\r' line endings are tolerated) and must all have
// the same length.
//
// Returns ErrMalformedGrid for empty input, ragged rows or unknown markers,
// ErrMissingAgent when no agent marker is present and ErrDuplicateAgent when
// more than one is.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}
	w := len(lines[0])
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, y, len(line), w)
		}
	}

	g := &Grid{
		size:      Size{Width: w, Height: len(lines)},
		obstacles: make(map[Position]struct{}),
	}
	found := false
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch c {
			case emptyMarker:
			case obstacleMarker:
				g.obstacles[Position{X: x, Y: y}] = struct{}{}
			default:
				o, ok := orientationOf(c)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedGrid, c, x, y)
				}
				if found {
					return nil, fmt.Errorf("%w: second agent at (%d,%d), first at %s",
						ErrDuplicateAgent, x, y, g.start.Position)
				}
				g.start = Agent{Orientation: o, Position: Position{X: x, Y: y}}
				found = true
			}
		}
	}
	if !found {
		return nil, ErrMissingAgent
	}

	return g, nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// Start returns the agent as found in the input.
func (g *Grid) Start() Agent {
	return g.start
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return g.size.Contains(p)
}

// IsObstacle reports whether p holds an obstacle.
// Complexity: O(1).
func (g *Grid) IsObstacle(p Position) bool {
	_, ok := g.obstacles[p]
	return ok
}

// ObstacleCount returns the number of obstacles.
func (g *Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// Obstacles returns the obstacle positions in row-major order.
// The slice is a fresh copy.
func (g *Grid) Obstacles() []Position {
	out := make([]Position, 0, len(g.obstacles))
	for p := range g.obstacles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// WithObstacle returns a clone of g with an extra obstacle at p. The receiver
// is left untouched.
//
// Returns ErrOutOfBounds if p is outside the grid, ErrStartCell if p is the
// agent's starting cell and ErrObstacleExists if p is already obstructed.
// Complexity: O(#obstacles).
func (g *Grid) WithObstacle(p Position) (*Grid, error) {
	switch {
	case !g.InBounds(p):
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	case p == g.start.Position:
		return nil, fmt.Errorf("%w: %s", ErrStartCell, p)
	case g.IsObstacle(p):
		return nil, fmt.Errorf("%w: %s", ErrObstacleExists, p)
	}
	obstacles := make(map[Position]struct{}, len(g.obstacles)+1)
	for q := range g.obstacles {
		obstacles[q] = struct{}{}
	}
	obstacles[p] = struct{}{}

	return &Grid{size: g.size, obstacles: obstacles, start: g.start}, nil
}

// Render writes the grid back to puzzle text, one '\n'-terminated line per
// row. Parse(g.Render()) yields an equal grid.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((g.size.Width + 1) * g.size.Height)
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == g.start.Position:
				b.WriteByte(g.start.Orientation.Marker())
			case g.IsObstacle(p):
				b.WriteByte(obstacleMarker)
			default:
				b.WriteByte(emptyMarker)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
