// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrMalformedGrid indicates empty input, rows of differing lengths or an unknown marker.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrMissingAgent indicates that no agent marker was found.
	ErrMissingAgent = errors.New("grid: missing agent marker")
	// ErrDuplicateAgent indicates more than one agent marker.
	ErrDuplicateAgent = errors.New("grid: duplicate agent marker")
	// ErrObstacleExists indicates an insertion at a cell that is already obstructed.
	ErrObstacleExists = errors.New("grid: obstacle already present")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrStartCell indicates an insertion under the agent's starting cell.
	ErrStartCell = errors.New("grid: cannot obstruct the start cell")
)
