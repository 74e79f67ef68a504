// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpatrol/grid"
)

// ExampleParse reads a small grid and inspects it.
func ExampleParse() {
	g, err := grid.Parse(".#..\n...#\n.^..\n..#.\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Size().Width, g.Size().Height)
	fmt.Println(g.Start())
	fmt.Println(g.Obstacles())
	// Output:
	// 4 4
	// 1 2 Up
	// [(1,0) (3,1) (2,3)]
}

// ExampleGrid_WithObstacle shows that the original grid is left untouched.
func ExampleGrid_WithObstacle() {
	g, _ := grid.Parse("...\n.>.\n...\n")
	h, err := g.WithObstacle(grid.Position{X: 2, Y: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.ObstacleCount(), h.ObstacleCount())

	_, err = g.WithObstacle(grid.Position{X: 1, Y: 1})
	fmt.Println(err)
	// Output:
	// 0 1
	// grid: cannot obstruct the start cell: (1,1)
}
