// SPDX-License-Identifier: MIT

// Package grid models the patrol map: a rectangular field of cells, a fixed
// set of obstacles and a single agent with a position and a facing.
//
// What:
//
//   - Parse turns puzzle text into an immutable *Grid.
//   - Position, Orientation and Agent are small value types; every step of a
//     simulation produces new values, nothing is shared.
//   - WithObstacle returns a structural clone with one extra obstacle, so many
//     hypothetical grids can be explored concurrently from one baseline.
//
// Markers:
//
//   - '#' obstacle
//   - '.' empty cell
//   - '^', '>', 'v', '<' agent facing Up, Right, Down, Left
//
// Complexity:
//
//   - Parse:        O(W×H) time, O(#obstacles) memory.
//   - IsObstacle:   O(1).
//   - WithObstacle: O(#obstacles) time and memory (the obstacle set is copied).
//
// Errors:
//
//   - ErrMalformedGrid: empty input, ragged rows or an unknown character.
//   - ErrMissingAgent: no agent marker.
//   - ErrDuplicateAgent: more than one agent marker.
//   - ErrObstacleExists, ErrOutOfBounds, ErrStartCell: rejected WithObstacle calls.
package grid
