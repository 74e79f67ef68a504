// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpatrol/grid"
)

func TestOrientation_Rotate(t *testing.T) {
	assert.Equal(t, grid.Right, grid.Up.Rotate())
	assert.Equal(t, grid.Down, grid.Right.Rotate())
	assert.Equal(t, grid.Left, grid.Down.Rotate())
	assert.Equal(t, grid.Up, grid.Left.Rotate())

	o := grid.Left
	for i := 0; i < 4; i++ {
		o = o.Rotate()
	}
	assert.Equal(t, grid.Left, o, "four turns must return to the same facing")
}

func TestOrientation_Delta(t *testing.T) {
	cases := []struct {
		o      grid.Orientation
		dx, dy int
		marker byte
	}{
		{grid.Up, 0, -1, '^'},
		{grid.Right, 1, 0, '>'},
		{grid.Down, 0, 1, 'v'},
		{grid.Left, -1, 0, '<'},
	}
	for _, tc := range cases {
		t.Run(tc.o.String(), func(t *testing.T) {
			dx, dy := tc.o.Delta()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
			assert.Equal(t, tc.marker, tc.o.Marker())
		})
	}
	assert.Equal(t, "Invalid", grid.Orientation(7).String())
}

// TestSize_Contains mirrors the bounds table of the original position helper.
func TestSize_Contains(t *testing.T) {
	cases := []struct {
		p    grid.Position
		s    grid.Size
		want bool
	}{
		{grid.Position{X: 3, Y: 8}, grid.Size{Width: 10, Height: 10}, true},
		{grid.Position{X: 12, Y: 8}, grid.Size{Width: 10, Height: 10}, false},
		{grid.Position{X: 3, Y: 20}, grid.Size{Width: 10, Height: 10}, false},
		{grid.Position{X: 10, Y: 10}, grid.Size{Width: 10, Height: 10}, false},
		{grid.Position{X: 0, Y: 0}, grid.Size{Width: 0, Height: 0}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.s.Contains(tc.p), "%s in %+v", tc.p, tc.s)
	}
}

func TestSize_States(t *testing.T) {
	s := grid.Size{Width: 2, Height: 2}
	assert.Equal(t, 4, s.Cells())
	assert.Equal(t, 16, s.States())
	assert.Equal(t, 3, s.Index(grid.Position{X: 1, Y: 1}))
}

func TestAgent_Values(t *testing.T) {
	a := grid.Agent{Orientation: grid.Up, Position: grid.Position{X: 1, Y: 2}}

	turned := a.Turn()
	moved := a.MoveTo(grid.Position{X: 1, Y: 1})

	assert.Equal(t, grid.Up, a.Orientation, "Turn must not mutate the receiver")
	assert.Equal(t, grid.Right, turned.Orientation)
	assert.Equal(t, a.Position, turned.Position)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, moved.Position)
	assert.Equal(t, grid.Up, moved.Orientation)
	assert.Equal(t, grid.State{Position: a.Position, Orientation: grid.Up}, a.State())
	assert.Equal(t, "1 2 Up", a.String())
}

func TestPosition_Less(t *testing.T) {
	assert.True(t, grid.Position{X: 9, Y: 0}.Less(grid.Position{X: 0, Y: 1}))
	assert.True(t, grid.Position{X: 1, Y: 1}.Less(grid.Position{X: 2, Y: 1}))
	assert.False(t, grid.Position{X: 2, Y: 1}.Less(grid.Position{X: 2, Y: 1}))
	assert.Equal(t, "(4,6)", grid.Position{X: 4, Y: 6}.String())
}
