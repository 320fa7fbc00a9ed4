// Package populate fills a generated level with its portal, items and
// enemies. It only uses room geometry and never changes connectivity.
package populate

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"

	"rogue/pkg/game/balance"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
)

// Spot picks a random cell of room r an entity may be placed on. taken
// rules out extra cells, such as ones held by enemies; it may be nil.
// ok is false when the room has no room left.
func Spot(r *level.Room, rng *rand.Rand, taken func(gruid.Point) bool) (p gruid.Point, ok bool) {
	cells := r.FreeCells()
	if taken != nil {
		free := cells[:0]
		for _, c := range cells {
			if !taken(c) {
				free = append(free, c)
			}
		}
		cells = free
	}
	if len(cells) == 0 {
		return gruid.Point{}, false
	}
	return cells[rng.IntN(len(cells))], true
}

// Populate places the exit portal in a room other than start, items in every
// room and enemies in every room but start. Enemies go to the level-wide list
// rather than to their room. With a nil strategy only the portal is placed.
func Populate(s level.Store, start, complexity int, strategy balance.Strategy, rng *rand.Rand) {
	n := s.NumRooms()
	if n == 0 {
		return
	}

	placePortal(s, start, rng)
	if strategy == nil {
		return
	}

	for i := 0; i < n; i++ {
		r := s.Room(i)
		count := strategy.ItemCount(rng, complexity)
		for j := 0; j < count; j++ {
			p, ok := Spot(r, rng, nil)
			if !ok {
				break
			}
			r.AddEntity(strategy.SpawnItem(rng, complexity, p))
		}
	}

	enemyCells := mapset.New[gruid.Point]()
	for i := 0; i < n; i++ {
		if i == start {
			continue
		}
		r := s.Room(i)
		count := strategy.EnemyCount(rng, complexity)
		for j := 0; j < count; j++ {
			p, ok := Spot(r, rng, enemyCells.Has)
			if !ok {
				break
			}
			enemyCells.Put(p)
			s.AddEnemy(strategy.SpawnEnemy(rng, complexity, p))
		}
	}
}

func placePortal(s level.Store, start int, rng *rand.Rand) {
	n := s.NumRooms()
	if n < 2 {
		return
	}
	i := rng.IntN(n - 1)
	if i >= start {
		i++
	}
	r := s.Room(i)
	if p, ok := Spot(r, rng, nil); ok {
		r.AddEntity(entities.New(entities.Reader(rng), entities.Portal, p))
	}
}
