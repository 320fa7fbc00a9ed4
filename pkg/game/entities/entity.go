// Package entities contains the things that occupy cells of a level: the
// player placeholder, the exit portal, items (keys included) and enemies.
package entities

import (
	"fmt"
	"io"
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"github.com/google/uuid"

	"rogue/pkg/engine/world"
)

// Kind identifies what an entity is.
type Kind int

// Entity kinds
const (
	Player Kind = iota
	Portal
	Key
	Weapon
	Potion
	Food
	Scroll
	Treasure
	Zombie
	Vampire
	SnakeMagician
	Ghost
	Ogre
	Mimic
)

var kindNames = []string{
	"player", "portal", "key", "weapon", "potion", "food", "scroll", "treasure",
	"zombie", "vampire", "snake_magician", "ghost", "ogre", "mimic",
}

// ItemKinds returns the kinds an item spawn can roll, in roll order.
func ItemKinds() []Kind {
	return []Kind{Weapon, Potion, Food, Scroll, Treasure}
}

// EnemyKinds returns the kinds an enemy spawn can roll, in roll order.
func EnemyKinds() []Kind {
	return []Kind{Zombie, Vampire, SnakeMagician, Ghost, Ogre, Mimic}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsItem reports whether k can be picked up.
func (k Kind) IsItem() bool {
	return k >= Key && k <= Treasure
}

// IsEnemy reports whether k is a monster.
func (k Kind) IsEnemy() bool {
	return k >= Zombie && k <= Mimic
}

// MarshalText encodes the kind by name so snapshots stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown entity kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind %q", string(b))
}

// Entity is anything standing on a cell of the level.
type Entity struct {
	ID   uuid.UUID   `json:"id"`
	Kind Kind        `json:"kind"`
	Pos  gruid.Point `json:"pos"`

	// Color is set on keys only.
	Color      world.Color `json:"color,omitempty"`
	// Complexity scales weapons and enemies.
	Complexity int         `json:"complexity,omitempty"`
}

// New creates an entity of the given kind at pos. The id is drawn from ids so
// that a seeded source yields the same ids on every run.
func New(ids io.Reader, kind Kind, pos gruid.Point) *Entity {
	return &Entity{
		ID:   NewID(ids),
		Kind: kind,
		Pos:  pos,
	}
}

// NewKey creates a key of the given colour.
func NewKey(ids io.Reader, color world.Color, pos gruid.Point) *Entity {
	e := New(ids, Key, pos)
	e.Color = color
	return e
}

// NewID draws a version 4 uuid from r. A nil reader or a failing one falls
// back to the process-wide random source.
func NewID(r io.Reader) uuid.UUID {
	if r == nil {
		return uuid.New()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.New()
	}
	return id
}

// Clone returns a copy of e.
func (e *Entity) Clone() *Entity {
	c := *e
	return &c
}

// Name returns a short display name such as "Blue key" or "ogre".
func (e *Entity) Name() string {
	if e.Kind == Key {
		return e.Color.String() + " key"
	}
	return e.Kind.String()
}

// Reader adapts rng to an io.Reader so ids can be drawn from the same seeded
// stream as the rest of a level.
func Reader(rng *rand.Rand) io.Reader {
	return randReader{rng: rng}
}

type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
