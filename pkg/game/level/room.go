// Package level holds the generated level: rooms laid out on a grid of
// sectors, the passages joining them, corridor polylines and enemies.
package level

import (
	"codeberg.org/anaseto/gruid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
)

// NoRoom marks a missing neighbour link.
const NoRoom = -1

// Passage is the single shared record of a connection between two rooms.
// Both rooms' doors point at it, so lock state never diverges between sides.
type Passage struct {
	Rooms [2]int      `json:"rooms"`
	Color world.Color `json:"color"`
	Open  bool        `json:"open"`
}

// NewPassage creates an open, unlocked passage between rooms a and b.
func NewPassage(a, b int) *Passage {
	return &Passage{Rooms: [2]int{a, b}, Color: world.Unlocked, Open: true}
}

// Lock closes the passage with the given colour.
func (p *Passage) Lock(c world.Color) {
	p.Color = c
	p.Open = false
}

// Unlock opens the passage and clears its colour.
func (p *Passage) Unlock() {
	p.Color = world.Unlocked
	p.Open = true
}

// Other returns the room on the far side of the passage from room.
func (p *Passage) Other(room int) int {
	if p.Rooms[0] == room {
		return p.Rooms[1]
	}
	return p.Rooms[0]
}

// Door is a room's opening onto a passage.
type Door struct {
	Pos     gruid.Point `json:"pos"`
	Passage int         `json:"passage"`
}

// Room is a rectangular room inside one sector of the level grid. TopLeft and
// BottomRight are the wall corners; the interior lies strictly between them.
type Room struct {
	Sector      int                        `json:"sector"`
	Row         int                        `json:"row"`
	Col         int                        `json:"col"`
	TopLeft     gruid.Point                `json:"top_left"`
	BottomRight gruid.Point                `json:"bottom_right"`
	Doors       [world.NumDirections]*Door `json:"doors"`
	Neighbors   [world.NumDirections]int   `json:"neighbors"`
	Entities    []*entities.Entity         `json:"entities"`
}

// NewRoom creates an unconnected room for the given sector and grid cell.
func NewRoom(sector, row, col int) *Room {
	r := &Room{Sector: sector, Row: row, Col: col}
	r.ClearLinks()
	return r
}

// Cell returns the room's position on the sector grid.
func (r *Room) Cell() gruid.Point {
	return gruid.Point{X: r.Col, Y: r.Row}
}

// Link connects a and b, a's side facing dir.
func Link(a, b *Room, dir world.Direction) {
	a.Neighbors[dir] = b.Sector
	b.Neighbors[dir.Opposite()] = a.Sector
}

// ClearLinks drops every connection and door of the room.
func (r *Room) ClearLinks() {
	for d := range r.Neighbors {
		r.Neighbors[d] = NoRoom
		r.Doors[d] = nil
	}
}

// Neighbor returns the sector connected in direction d.
func (r *Room) Neighbor(d world.Direction) (int, bool) {
	if !d.IsValid() || r.Neighbors[d] == NoRoom {
		return NoRoom, false
	}
	return r.Neighbors[d], true
}

// Connected reports whether the room has a connection in direction d.
func (r *Room) Connected(d world.Direction) bool {
	_, ok := r.Neighbor(d)
	return ok
}

// ConnectionCount returns how many connections the room has.
func (r *Room) ConnectionCount() int {
	n := 0
	for _, s := range r.Neighbors {
		if s != NoRoom {
			n++
		}
	}
	return n
}

// Bounds returns the rectangle covered by the room, walls included.
func (r *Room) Bounds() gruid.Range {
	return gruid.NewRange(r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X+1, r.BottomRight.Y+1)
}

// Interior returns the floor rectangle strictly inside the walls.
func (r *Room) Interior() gruid.Range {
	return gruid.NewRange(r.TopLeft.X+1, r.TopLeft.Y+1, r.BottomRight.X, r.BottomRight.Y)
}

// Contains reports whether p lies in the room, walls included.
func (r *Room) Contains(p gruid.Point) bool {
	return p.In(r.Bounds())
}

// OnWall reports whether p lies on the room's boundary, excluding corners.
func (r *Room) OnWall(p gruid.Point) bool {
	onX := p.X == r.TopLeft.X || p.X == r.BottomRight.X
	onY := p.Y == r.TopLeft.Y || p.Y == r.BottomRight.Y
	if onX && onY {
		return false
	}
	insideX := p.X > r.TopLeft.X && p.X < r.BottomRight.X
	insideY := p.Y > r.TopLeft.Y && p.Y < r.BottomRight.Y
	return (onX && insideY) || (onY && insideX)
}

// DoorAt returns the room's door at p, if any.
func (r *Room) DoorAt(p gruid.Point) *Door {
	for _, d := range r.Doors {
		if d != nil && d.Pos == p {
			return d
		}
	}
	return nil
}

// AddEntity puts e in the room.
func (r *Room) AddEntity(e *entities.Entity) {
	r.Entities = append(r.Entities, e)
}

// RemoveEntity takes e out of the room. Returns false if it was not there.
func (r *Room) RemoveEntity(e *entities.Entity) bool {
	for i, x := range r.Entities {
		if x == e {
			r.Entities = append(r.Entities[:i], r.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveKind takes every entity of kind k out of the room and returns how
// many were removed.
func (r *Room) RemoveKind(k entities.Kind) int {
	kept := r.Entities[:0]
	for _, e := range r.Entities {
		if e.Kind != k {
			kept = append(kept, e)
		}
	}
	n := len(r.Entities) - len(kept)
	for i := len(kept); i < len(r.Entities); i++ {
		r.Entities[i] = nil
	}
	r.Entities = kept
	return n
}

// EntityAt returns the entity standing at p, if any.
func (r *Room) EntityAt(p gruid.Point) *entities.Entity {
	for _, e := range r.Entities {
		if e.Pos == p {
			return e
		}
	}
	return nil
}

// HasKey reports whether any key lies in the room.
func (r *Room) HasKey() bool {
	for _, e := range r.Entities {
		if e.Kind == entities.Key {
			return true
		}
	}
	return false
}

// FreeCells returns the interior cells an entity may be placed on: not
// occupied by another entity of the room and not orthogonally next to a door.
// Cells are listed row by row so a seeded pick stays reproducible.
func (r *Room) FreeCells() []gruid.Point {
	var out []gruid.Point
	in := r.Interior()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		for x := in.Min.X; x < in.Max.X; x++ {
			p := gruid.Point{X: x, Y: y}
			if r.EntityAt(p) != nil || r.besideDoor(p) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) besideDoor(p gruid.Point) bool {
	for _, d := range r.Doors {
		if d == nil {
			continue
		}
		if _, ok := world.Between(d.Pos, p); ok {
			return true
		}
	}
	return false
}
