// SPDX-License-Identifier: MIT

// Package walk implements the patrol transition rule on a grid.Grid.
//
// Rule:
//
//   - Look at the cell one step ahead in the current facing.
//   - If that cell is outside the grid, the walk is over (the agent exits).
//   - If that cell holds an obstacle, turn clockwise in place.
//   - Otherwise move onto it, keeping the facing.
//
// Step is pure: identical (grid, agent) pairs always yield identical results.
// Walker wraps Step into a lazy, restartable sequence of agent states. The
// sequence is finite when the agent exits and infinite when it loops, so
// consumers must bound it themselves. cycle.Traverse is the bounded consumer
// behind every patrol the search and the CLI run.
//
// Complexity: Peek and Step are O(1).
package walk
