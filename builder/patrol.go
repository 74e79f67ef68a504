// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpatrol/grid"
)

const (
	methodPatrol = "Patrol"
	minDim       = 1
	facings      = 4
)

// Patrol returns puzzle text for a random width×height grid. Each cell holds
// an obstacle with probability density; the agent is placed on a free cell
// (one is cleared if the draw obstructed every cell) with a random facing.
//
// Complexity: O(W×H) time and memory.
func Patrol(width, height int, opts ...Option) (string, error) {
	if width < minDim || height < minDim {
		return "", fmt.Errorf("%s: width=%d, height=%d (each must be ≥ %d): %w",
			methodPatrol, width, height, minDim, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if cfg.density < 0 || cfg.density >= 1 {
		return "", fmt.Errorf("%s: density=%g: %w", methodPatrol, cfg.density, ErrBadDensity)
	}

	rows := make([][]byte, height)
	free := make([]grid.Position, 0, width*height)
	for y := range rows {
		rows[y] = make([]byte, width)
		for x := range rows[y] {
			if cfg.rng.Float64() < cfg.density {
				rows[y][x] = '#'
				continue
			}
			rows[y][x] = '.'
			free = append(free, grid.Position{X: x, Y: y})
		}
	}

	var at grid.Position
	if len(free) == 0 {
		at = grid.Position{X: cfg.rng.Intn(width), Y: cfg.rng.Intn(height)}
	} else {
		at = free[cfg.rng.Intn(len(free))]
	}
	rows[at.Y][at.X] = grid.Orientation(cfg.rng.Intn(facings)).Marker()

	var b strings.Builder
	b.Grow((width + 1) * height)
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
