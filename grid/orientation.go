// SPDX-License-Identifier: MIT

package grid

// Orientation is the agent's facing. The declaration order is the clockwise
// rotation order, Rotate relies on it.
type Orientation uint8

const (
	// Up faces towards row 0.
	Up Orientation = iota
	// Right faces towards increasing X.
	Right
	// Down faces towards increasing Y.
	Down
	// Left faces towards column 0.
	Left
)

var orientations = [...]struct {
	name   string
	marker byte
	dx, dy int
}{
	Up:    {"Up", '^', 0, -1},
	Right: {"Right", '>', 1, 0},
	Down:  {"Down", 'v', 0, 1},
	Left:  {"Left", '<', -1, 0},
}

// Rotate returns the next facing clockwise: Up→Right→Down→Left→Up.
func (o Orientation) Rotate() Orientation {
	return (o + 1) % Orientation(len(orientations))
}

// Delta returns the unit step taken when moving forward.
func (o Orientation) Delta() (dx, dy int) {
	v := orientations[o]
	return v.dx, v.dy
}

// Marker returns the character used for this facing in puzzle text.
func (o Orientation) Marker() byte {
	return orientations[o].marker
}

func (o Orientation) String() string {
	if int(o) >= len(orientations) {
		return "Invalid"
	}
	return orientations[o].name
}

// orientationOf maps an agent marker to its facing.
func orientationOf(c byte) (Orientation, bool) {
	for o, v := range orientations {
		if v.marker == c {
			return Orientation(o), true
		}
	}
	return 0, false
}
