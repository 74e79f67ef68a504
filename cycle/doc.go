// SPDX-License-Identifier: MIT

// Package cycle classifies a patrol as exiting or looping.
//
// What:
//
//   - Traverse pulls states from a walk.Walker, starting at the grid's start
//     state, and records every (position, facing) pair in a visited set
//     before advancing.
//   - If the next step leaves the grid, the result is Exited together with the
//     ordered trace of positions.
//   - If a recorded state comes up again, the result is Looped. Step is
//     deterministic, so a repeated exact state means the walk repeats forever
//     from there on; detection stops at the first repeat.
//
// Bound:
//
//	The visited set never grows beyond Size.States() = W×H×4. Reaching that
//	bound without an exit or a repeat is impossible for a correct step
//	function and is reported as ErrStateBound.
//
// Complexity:
//
//   - Time:   O(S) where S ≤ W×H×4 is the number of recorded states.
//   - Memory: O(S) for the visited set plus O(S) for the trace when kept.
package cycle
