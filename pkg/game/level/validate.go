package level

import (
	"errors"
	"fmt"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid level")

// Validate checks the structural invariants of a generated level and returns
// the first one found broken.
func (l *Level) Validate() error {
	for i, r := range l.Rooms {
		if err := l.validateRoom(i, r); err != nil {
			return err
		}
	}
	for i, p := range l.Passages {
		if p.Open != (p.Color == world.Unlocked) {
			return fmt.Errorf("%w: passage %d is open=%v with colour %v", ErrInvalid, i, p.Open, p.Color)
		}
		if !p.Open && !p.Color.IsLock() {
			return fmt.Errorf("%w: passage %d locked with %v", ErrInvalid, i, p.Color)
		}
	}
	for i, c := range l.Corridors {
		if err := l.validateCorridor(i, c); err != nil {
			return err
		}
	}
	return nil
}

func (l *Level) validateRoom(i int, r *Room) error {
	if r.Sector != i {
		return fmt.Errorf("%w: room %d has sector %d", ErrInvalid, i, r.Sector)
	}
	if r.BottomRight.X <= r.TopLeft.X || r.BottomRight.Y <= r.TopLeft.Y {
		return fmt.Errorf("%w: room %d corners %v %v", ErrInvalid, i, r.TopLeft, r.BottomRight)
	}

	for _, d := range world.AllDirections() {
		n, linked := r.Neighbor(d)
		door := r.Doors[d]
		if !linked {
			if door != nil {
				return fmt.Errorf("%w: room %d has a %v door without a connection", ErrInvalid, i, d)
			}
			continue
		}

		other := l.Room(n)
		if other == nil {
			return fmt.Errorf("%w: room %d links %v to missing room %d", ErrInvalid, i, d, n)
		}
		if back, ok := other.Neighbor(d.Opposite()); !ok || back != i {
			return fmt.Errorf("%w: room %d links %v to %d but not back", ErrInvalid, i, d, n)
		}
		if door == nil {
			// Geometry may not have run yet; a half-built level has no doors at all.
			if other.Doors[d.Opposite()] != nil {
				return fmt.Errorf("%w: room %d lacks the %v door room %d has", ErrInvalid, i, d, n)
			}
			continue
		}
		if !r.OnWall(door.Pos) || !onSide(r, d, door.Pos.X, door.Pos.Y) {
			return fmt.Errorf("%w: room %d %v door %v is off its wall", ErrInvalid, i, d, door.Pos)
		}
		otherDoor := other.Doors[d.Opposite()]
		if otherDoor == nil || otherDoor.Passage != door.Passage {
			return fmt.Errorf("%w: rooms %d and %d do not share the %v passage", ErrInvalid, i, n, d)
		}
		p := l.Passage(door.Passage)
		if p == nil || p.Other(i) != n {
			return fmt.Errorf("%w: room %d %v door points at the wrong passage", ErrInvalid, i, d)
		}
	}

	for _, e := range r.Entities {
		if e.Kind == entities.Key && HasDoorColor(l, r, e.Color) {
			return fmt.Errorf("%w: %s lies behind its own lock in room %d", ErrInvalid, e.Name(), i)
		}
	}
	return nil
}

func onSide(r *Room, d world.Direction, x, y int) bool {
	switch d {
	case world.Up:
		return y == r.TopLeft.Y
	case world.Down:
		return y == r.BottomRight.Y
	case world.Left:
		return x == r.TopLeft.X
	case world.Right:
		return x == r.BottomRight.X
	}
	return false
}

// HasDoorColor reports whether one of room r's doors is locked with c.
func HasDoorColor(g Graph, r *Room, c world.Color) bool {
	for _, d := range world.AllDirections() {
		if p := DoorPassage(g, r, d); p != nil && !p.Open && p.Color == c {
			return true
		}
	}
	return false
}

func (l *Level) validateCorridor(i int, c *Corridor) error {
	if len(c.Points) < 2 || len(c.Points) > 4 {
		return fmt.Errorf("%w: corridor %d has %d points", ErrInvalid, i, len(c.Points))
	}
	a, b := l.Room(c.Rooms[0]), l.Room(c.Rooms[1])
	if a == nil || b == nil {
		return fmt.Errorf("%w: corridor %d joins missing rooms %v", ErrInvalid, i, c.Rooms)
	}
	first, last := a.DoorAt(c.Points[0]), b.DoorAt(c.Points[len(c.Points)-1])
	if first == nil || last == nil {
		return fmt.Errorf("%w: corridor %d does not end on doors of rooms %v", ErrInvalid, i, c.Rooms)
	}
	if first.Passage != last.Passage {
		return fmt.Errorf("%w: corridor %d ends on doors of different passages", ErrInvalid, i)
	}
	for j := 1; j < len(c.Points); j++ {
		if c.Points[j].X != c.Points[j-1].X && c.Points[j].Y != c.Points[j-1].Y {
			return fmt.Errorf("%w: corridor %d segment %d is diagonal", ErrInvalid, i, j)
		}
	}
	return nil
}
