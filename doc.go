// Package gridpatrol simulates a patrolling agent on a rectangular grid and
// finds the single obstacles that would trap it in an endless loop.
//
// 🚀 What is gridpatrol?
//
//	An agent stands on a grid of open cells and obstacles. Each step it
//	either moves one cell forward or, when an obstacle blocks the way,
//	turns 90° clockwise in place. The patrol ends when the agent walks off
//	the grid. gridpatrol answers two questions:
//		• How many distinct cells does the agent visit before it leaves?
//		• How many single new obstacles would make it loop forever instead?
//
// ✨ Why gridpatrol?
//
//   - Exact loop detection on (position, facing) states, bounded by W×H×4
//   - Only cells on the original walk are tried as obstacle candidates
//   - Candidates are simulated in parallel on private grid clones; the
//     answer never depends on the worker count
//   - Structured logs, OpenTelemetry metrics and a small CLI on top
//
// Packages:
//
//	grid/:     Parse, Grid, Position, Orientation, Agent and immutable WithObstacle
//	walk/:     the single-step transition rule and a lazy Walker
//	cycle/:    Traverse: exited-or-looped classification with the visited trace
//	search/:   Candidates, Partition, CountLoopObstacles and the Analyze report
//	builder/:  deterministic random grids for tests and benchmarks
//	cmd/:      the gridpatrol command (solve, trace, generate, version)
//
// Quick ASCII example:
//
//	.#..      the agent (^) walks up, turns right at the top obstacle,
//	...#      down at the right one, left at the bottom one and leaves
//	.^..      through the left edge after visiting 5 cells.
//	..#.      An obstacle on the exit cell (0,2) closes a 2×2 loop.
//
//	go install github.com/katalvlaran/gridpatrol/cmd/gridpatrol@latest
package gridpatrol
