// SPDX-License-Identifier: MIT

// Package search counts the single-obstacle placements that trap a patrol.
//
// What:
//
//   - Candidates walks the unmodified grid once and returns every distinct
//     cell of that walk except the start, in row-major order.
//   - CountLoopObstacles splits the candidates into contiguous chunks
//     (Partition), one per worker, and simulates each placement on a private
//     clone of the grid with cycle.Traverse.
//   - Analyze wraps parsing, the baseline walk and the count into a Report
//     tagged with a generated run ID.
//
// Concurrency:
//
//	Workers share the baseline grid read-only and write their count into a
//	private slot that is summed after errgroup.Wait. A panicking worker is
//	recovered and reported as *WorkerError; the first failure cancels the
//	other workers. The result does not depend on the worker count.
//
// Errors:
//
//   - ErrBaselineLoops: the unmodified grid already loops.
//   - ErrInvariantViolation: a candidate could not be placed or traversed.
//   - ErrWorkerFailure: a worker panicked.
//   - grid parse errors (Analyze) and context errors pass through unchanged.
//
// Complexity:
//
//   - Time:   O(C × S / P) with C candidates, S ≤ W×H×4 states per walk and
//     P workers.
//   - Memory: O(P × (W×H + S)) for the live clones and visited sets.
package search
