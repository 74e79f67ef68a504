// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/gridpatrol/grid"

// ExportedEvaluate exposes the default evaluator to search_test.
var ExportedEvaluate = evaluate

// ExportedWithEvaluator replaces the per-candidate simulation.
func ExportedWithEvaluator(fn func(g *grid.Grid, p grid.Position) (bool, int, error)) Option {
	return func(o *Options) {
		o.evaluate = fn
	}
}
