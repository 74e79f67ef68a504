// SPDX-License-Identifier: MIT

// Package builder generates random, always-valid patrol grids.
//
// What:
//
//   - Patrol(width, height, opts...) returns puzzle text that grid.Parse
//     accepts: a width×height field with obstacles scattered at the configured
//     density and exactly one agent on a free cell with a random facing.
//
// Why:
//
//   - Property tests: check invariants (parallel == sequential, start
//     exclusion, state bound) on many grids instead of one hand-written map.
//   - Benchmarks: produce large inputs of controlled density.
//
// Determinism:
//
//   - Output depends only on (width, height, density, rng state). Use
//     WithSeed for reproducible fixtures; the default seed is fixed.
//
// Errors:
//
//   - ErrTooSmall: width or height below 1.
//   - ErrBadDensity: density outside [0, 1).
package builder
