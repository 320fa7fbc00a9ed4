package generator

import (
	"codeberg.org/anaseto/gruid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/level"
)

// BuildGeometry draws each room's rectangle inside its sector, with random
// margins on every side, puts a door on the wall facing each connection and
// creates the passage shared by the two doors of a connection.
func (g *Generator) BuildGeometry(s level.Store) {
	for i := 0; i < s.NumRooms(); i++ {
		r := s.Room(i)
		g.placeCorners(r)
		g.placeDoors(r)
	}

	for i := 0; i < s.NumRooms(); i++ {
		r := s.Room(i)
		for _, d := range []world.Direction{world.Right, world.Down} {
			n, ok := r.Neighbor(d)
			if !ok {
				continue
			}
			other := s.Room(n)
			p := s.AddPassage(level.NewPassage(r.Sector, other.Sector))
			r.Doors[d].Passage = p
			other.Doors[d.Opposite()].Passage = p
		}
	}
}

func (g *Generator) placeCorners(r *level.Room) {
	o := g.opts
	offX, offY := r.Col*o.SectorWidth, r.Row*o.SectorHeight

	r.TopLeft = gruid.Point{
		X: g.rng.IntN(o.CornerXRange) + offX + 1,
		Y: g.rng.IntN(o.CornerYRange) + offY + 1,
	}
	r.BottomRight = gruid.Point{
		X: o.SectorWidth - g.rng.IntN(o.CornerXRange) + offX - 1,
		Y: o.SectorHeight - g.rng.IntN(o.CornerYRange) + offY - 1,
	}
}

// placeDoors puts a door on the wall facing every connection, anywhere along
// the wall but its corners.
func (g *Generator) placeDoors(r *level.Room) {
	tl, br := r.TopLeft, r.BottomRight
	alongX := func() int { return g.rng.IntN(br.X-tl.X-1) + tl.X + 1 }
	alongY := func() int { return g.rng.IntN(br.Y-tl.Y-1) + tl.Y + 1 }

	for _, d := range world.AllDirections() {
		if !r.Connected(d) {
			r.Doors[d] = nil
			continue
		}
		var p gruid.Point
		switch d {
		case world.Up:
			p = gruid.Point{X: alongX(), Y: tl.Y}
		case world.Right:
			p = gruid.Point{X: br.X, Y: alongY()}
		case world.Down:
			p = gruid.Point{X: alongX(), Y: br.Y}
		case world.Left:
			p = gruid.Point{X: tl.X, Y: alongY()}
		}
		r.Doors[d] = &level.Door{Pos: p, Passage: -1}
	}
}
