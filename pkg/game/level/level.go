package level

import (
	"encoding/json"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/google/uuid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
)

// Graph is the read view of a level the traversals need.
type Graph interface {
	NumRooms() int
	Room(i int) *Room
	NumPassages() int
	Passage(i int) *Passage
}

// Store is the room-indexed storage the generator fills in.
type Store interface {
	Graph
	// Reset drops all content and starts level number under a new id.
	Reset(id uuid.UUID, number int)
	AddRoom(r *Room)
	// AddPassage stores p and returns its index.
	AddPassage(p *Passage) int
	AddCorridor(c *Corridor)
	AddEnemy(e *entities.Entity)
}

// Level is one generated dungeon floor. Rooms are indexed by sector.
type Level struct {
	ID        uuid.UUID          `json:"id"`
	Number    int                `json:"number"`
	Rooms     []*Room            `json:"rooms"`
	Passages  []*Passage         `json:"passages"`
	Corridors []*Corridor        `json:"corridors"`
	Enemies   []*entities.Entity `json:"enemies"`
}

// New returns an empty level.
func New() *Level {
	return &Level{}
}

// Reset drops all content and starts level number under id.
func (l *Level) Reset(id uuid.UUID, number int) {
	l.ID = id
	l.Number = number
	l.Rooms = nil
	l.Passages = nil
	l.Corridors = nil
	l.Enemies = nil
}

// NumRooms returns the number of rooms.
func (l *Level) NumRooms() int {
	return len(l.Rooms)
}

// Room returns room i, or nil when i is out of range.
func (l *Level) Room(i int) *Room {
	if i < 0 || i >= len(l.Rooms) {
		return nil
	}
	return l.Rooms[i]
}

// AddRoom appends r. Rooms must be added in sector order.
func (l *Level) AddRoom(r *Room) {
	l.Rooms = append(l.Rooms, r)
}

// NumPassages returns the number of passages.
func (l *Level) NumPassages() int {
	return len(l.Passages)
}

// Passage returns passage i, or nil when i is out of range.
func (l *Level) Passage(i int) *Passage {
	if i < 0 || i >= len(l.Passages) {
		return nil
	}
	return l.Passages[i]
}

// AddPassage appends p and returns its index.
func (l *Level) AddPassage(p *Passage) int {
	l.Passages = append(l.Passages, p)
	return len(l.Passages) - 1
}

// AddCorridor appends c.
func (l *Level) AddCorridor(c *Corridor) {
	l.Corridors = append(l.Corridors, c)
}

// AddEnemy appends e to the level-wide enemy list.
func (l *Level) AddEnemy(e *entities.Entity) {
	l.Enemies = append(l.Enemies, e)
}

// DoorPassage returns the passage behind door d of room r.
func DoorPassage(g Graph, r *Room, d world.Direction) *Passage {
	if !d.IsValid() || r.Doors[d] == nil {
		return nil
	}
	return g.Passage(r.Doors[d].Passage)
}

// RoomAt returns the index of the room containing p, walls included.
func (l *Level) RoomAt(p gruid.Point) (int, bool) {
	for i, r := range l.Rooms {
		if r.Contains(p) {
			return i, true
		}
	}
	return NoRoom, false
}

// DoorAt returns the door at p together with the passage behind it.
func (l *Level) DoorAt(p gruid.Point) (*Door, *Passage) {
	for _, r := range l.Rooms {
		if d := r.DoorAt(p); d != nil {
			return d, l.Passage(d.Passage)
		}
	}
	return nil, nil
}

// EnemyAt returns the enemy standing at p, if any.
func (l *Level) EnemyAt(p gruid.Point) *entities.Entity {
	for _, e := range l.Enemies {
		if e.Pos == p {
			return e
		}
	}
	return nil
}

// Keys returns every key lying in the level, in room order.
func (l *Level) Keys() []*entities.Entity {
	var out []*entities.Entity
	for _, r := range l.Rooms {
		for _, e := range r.Entities {
			if e.Kind == entities.Key {
				out = append(out, e)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the level, safe to hand to another goroutine.
func (l *Level) Clone() (*Level, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to copy level: %w", err)
	}
	var out Level
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to copy level: %w", err)
	}
	return &out, nil
}
