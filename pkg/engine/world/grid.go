// Package world provides generic grid-based world primitives shared by the
// level generator and its collaborators.
package world

import "codeberg.org/anaseto/gruid"

// Grid is a fixed-size rows x cols arena of slots. Slots are addressed with
// gruid points where X is the column and Y is the row.
type Grid[T any] struct {
	slots [][]T
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T any](rows, cols int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(rows, cols)
	return g
}

// Build (re)initializes the grid with the given dimensions, dropping any
// previous content.
func (g *Grid[T]) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.slots = make([][]T, rows)
	for row := range g.slots {
		g.slots[row] = make([]T, cols)
	}
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid[T]) IsValidPosition(p gruid.Point) bool {
	return p.Y >= 0 && p.Y < g.rows && p.X >= 0 && p.X < g.cols
}

// Get returns the slot at p, or the zero value if p is out of bounds.
func (g *Grid[T]) Get(p gruid.Point) T {
	if !g.IsValidPosition(p) {
		var zero T
		return zero
	}
	return g.slots[p.Y][p.X]
}

// Set stores v at p. Returns false if p is out of bounds.
func (g *Grid[T]) Set(p gruid.Point, v T) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.slots[p.Y][p.X] = v
	return true
}

// Neighbor returns the slot adjacent to p in the given direction.
// ok is false when that slot lies outside the grid.
func (g *Grid[T]) Neighbor(p gruid.Point, dir Direction) (v T, ok bool) {
	q := p.Add(dir.Delta())
	if !dir.IsValid() || !g.IsValidPosition(q) {
		return v, false
	}
	return g.slots[q.Y][q.X], true
}

// ForEach iterates over all slots in row-major order
func (g *Grid[T]) ForEach(fn func(p gruid.Point, v T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(gruid.Point{X: col, Y: row}, g.slots[row][col])
		}
	}
}

// Column returns the slots of column col from top to bottom.
func (g *Grid[T]) Column(col int) []T {
	if col < 0 || col >= g.cols {
		return nil
	}
	out := make([]T, 0, g.rows)
	for row := 0; row < g.rows; row++ {
		out = append(out, g.slots[row][col])
	}
	return out
}

// Row returns the slots of row row from left to right.
func (g *Grid[T]) Row(row int) []T {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]T, g.cols)
	copy(out, g.slots[row])
	return out
}
