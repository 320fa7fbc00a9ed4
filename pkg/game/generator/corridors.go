package generator

import (
	"codeberg.org/anaseto/gruid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/level"
)

// BuildCorridors turns every connection into a corridor polyline between its
// two doors. Connections with a missing door are skipped.
func (g *Generator) BuildCorridors(s level.Store) {
	rooms := make([]*level.Room, s.NumRooms())
	for i := range rooms {
		rooms[i] = s.Room(i)
	}
	grid := sectorGrid(rooms, g.opts.GridSize)

	for _, r := range rooms {
		if n, ok := r.Neighbor(world.Right); ok {
			right := s.Room(n)
			if back, ok := right.Neighbor(world.Left); ok && back == r.Sector {
				g.addCorridor(s, g.horizontalCorridor(grid, r, right))
			}
		}

		if n, ok := r.Neighbor(world.Down); ok {
			below := s.Room(n)
			// Graph links only join grid-adjacent rooms, so the room below
			// always shares the column and the turn cases stay unused. They
			// cover a diagonal link should the graph ever produce one.
			switch {
			case below.Row == r.Row+1 && below.Col < r.Col:
				g.addCorridor(s, turnCorridor(r, below, level.LeftTurn))
			case below.Row == r.Row+1 && below.Col > r.Col:
				g.addCorridor(s, turnCorridor(r, below, level.RightTurn))
			default:
				g.addCorridor(s, g.verticalCorridor(grid, r, below))
			}
		}
	}
}

func (g *Generator) addCorridor(s level.Store, c *level.Corridor) {
	if c == nil {
		return
	}
	s.AddCorridor(c)
}

// horizontalCorridor joins the right door of left to the left door of right
// through a column drawn from the free space between the two grid columns.
func (g *Generator) horizontalCorridor(grid *world.Grid[*level.Room], left, right *level.Room) *level.Corridor {
	from, to := left.Doors[world.Right], right.Doors[world.Left]
	if from == nil || to == nil {
		return nil
	}

	lo := from.Pos.X
	for _, r := range grid.Column(left.Col) {
		if r != nil {
			lo = max(lo, r.BottomRight.X)
		}
	}
	hi := to.Pos.X
	for _, r := range grid.Column(right.Col) {
		if r != nil {
			hi = min(hi, r.TopLeft.X)
		}
	}
	x := g.between(lo, hi)

	return &level.Corridor{
		Type:  level.StraightHorizontal,
		Rooms: [2]int{left.Sector, right.Sector},
		Points: []gruid.Point{
			from.Pos,
			{X: x, Y: from.Pos.Y},
			{X: x, Y: to.Pos.Y},
			to.Pos,
		},
	}
}

// verticalCorridor joins the bottom door of top to the top door of bottom
// through a row drawn from the free space between the two grid rows.
func (g *Generator) verticalCorridor(grid *world.Grid[*level.Room], top, bottom *level.Room) *level.Corridor {
	from, to := top.Doors[world.Down], bottom.Doors[world.Up]
	if from == nil || to == nil {
		return nil
	}

	lo := from.Pos.Y
	for _, r := range grid.Row(top.Row) {
		if r != nil {
			lo = max(lo, r.BottomRight.Y)
		}
	}
	hi := to.Pos.Y
	for _, r := range grid.Row(bottom.Row) {
		if r != nil {
			hi = min(hi, r.TopLeft.Y)
		}
	}
	y := g.between(lo, hi)

	return &level.Corridor{
		Type:  level.StraightVertical,
		Rooms: [2]int{top.Sector, bottom.Sector},
		Points: []gruid.Point{
			from.Pos,
			{X: from.Pos.X, Y: y},
			{X: to.Pos.X, Y: y},
			to.Pos,
		},
	}
}

// between draws a value strictly between lo and hi, or the midpoint when no
// such value exists.
func (g *Generator) between(lo, hi int) int {
	if hi-lo-1 <= 0 {
		return (lo + hi) / 2
	}
	return lo + 1 + g.rng.IntN(hi-lo-1)
}

// turnCorridor builds an L-shaped corridor from the bottom door of top to
// the side door of other, which lies one row down and to the left (LeftTurn)
// or right (RightTurn).
func turnCorridor(top, other *level.Room, typ level.CorridorType) *level.Corridor {
	side := world.Right
	if typ == level.RightTurn {
		side = world.Left
	}
	from, to := top.Doors[world.Down], other.Doors[side]
	if from == nil || to == nil {
		return nil
	}

	return &level.Corridor{
		Type:  typ,
		Rooms: [2]int{top.Sector, other.Sector},
		Points: []gruid.Point{
			from.Pos,
			{X: from.Pos.X, Y: to.Pos.Y},
			to.Pos,
		},
	}
}
