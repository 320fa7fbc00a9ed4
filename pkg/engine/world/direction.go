package world

import "codeberg.org/anaseto/gruid"

// Direction represents the side of a room a connection leaves from.
// The numeric values double as indices into per-room door and link arrays.
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of sides a room has.
const NumDirections = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % NumDirections
}

// Delta returns the grid offset for this direction, with X growing to the
// right and Y growing downwards.
func (d Direction) Delta() gruid.Point {
	switch d {
	case Up:
		return gruid.Point{X: 0, Y: -1}
	case Right:
		return gruid.Point{X: 1, Y: 0}
	case Down:
		return gruid.Point{X: 0, Y: 1}
	case Left:
		return gruid.Point{X: -1, Y: 0}
	default:
		return gruid.Point{}
	}
}

// Between returns the direction leading from grid cell a to the orthogonally
// adjacent grid cell b. ok is false when the cells are not adjacent.
func Between(a, b gruid.Point) (d Direction, ok bool) {
	diff := b.Sub(a)
	for _, dir := range AllDirections() {
		if diff == dir.Delta() {
			return dir, true
		}
	}
	return 0, false
}
