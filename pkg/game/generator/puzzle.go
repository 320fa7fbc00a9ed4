package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
	"rogue/pkg/game/populate"
)

// Reasons an attempt at the puzzle is thrown away.
const (
	reasonKeyInStart   = "key would land in the start room"
	reasonNoKeySpot    = "no free cell for a key"
	reasonTooFewColors = "fewer lock colours than requested"
	reasonUnsolvable   = "not every room is reachable with the keys placed"
)

// Key room scoring
const (
	baseWeight      = 5
	startPenalty    = 15
	hasKeyPenalty   = 15
	ownColorPenalty = 20
	deadEndBonus    = 15
	bottleneckBonus = 5
)

// BuildPuzzle locks doors and places keys until a player starting in start
// can reach every room. Each failed attempt strips all locks and keys and
// starts over; the room graph, geometry and corridors are left as they are.
func (g *Generator) BuildPuzzle(s level.Store, start int) error {
	for attempt := 1; attempt <= g.opts.MaxPuzzleAttempts; attempt++ {
		reason := g.tryPuzzle(s, start)
		if reason == "" {
			g.log.Debug("puzzle placed", "attempt", attempt, "start_room", start)
			return nil
		}
		g.log.Debug("regenerating puzzle", "attempt", attempt, "reason", reason)
		stripPuzzle(s)
	}
	return fmt.Errorf("%w: %w after %d attempts", ErrGenerationFailed, ErrPuzzleUnsolvable, g.opts.MaxPuzzleAttempts)
}

// tryPuzzle makes one attempt and returns why it failed, or "" on success.
func (g *Generator) tryPuzzle(s level.Store, start int) string {
	if g.opts.LockColors == 0 {
		return ""
	}

	used := g.placeLocks(s, start, g.pickColors())
	if len(used) < g.opts.LockColors {
		return reasonTooFewColors
	}
	if reason := g.placeKeys(s, start, used); reason != "" {
		return reason
	}
	if len(level.Collect(s, start)) != s.NumRooms() {
		return reasonUnsolvable
	}
	return ""
}

// pickColors draws the level's distinct lock colours from the palette.
func (g *Generator) pickColors() []world.Color {
	palette := world.LockColors()
	g.rng.Shuffle(len(palette), func(i, j int) {
		palette[i], palette[j] = palette[j], palette[i]
	})
	return palette[:g.opts.LockColors]
}

// placeLocks walks the room graph breadth first from start and, in every
// room but start, locks each open door with probability LockProbability
// using one of candidates. Returns the colours used, in the order first used.
func (g *Generator) placeLocks(s level.Store, start int, candidates []world.Color) []world.Color {
	var used []world.Color
	seen := mapset.New[world.Color]()

	for _, sector := range level.Walk(s, start, nil) {
		if sector == start {
			continue
		}
		r := s.Room(sector)
		for _, d := range world.AllDirections() {
			if g.rng.Float64() >= g.opts.LockProbability {
				continue
			}
			p := level.DoorPassage(s, r, d)
			if p == nil || !p.Open {
				continue
			}
			c := candidates[g.rng.IntN(len(candidates))]
			p.Lock(c)
			if !seen.Has(c) {
				seen.Put(c)
				used = append(used, c)
			}
		}
	}
	return used
}

// placeKeys places one key per used colour, in order. Each key goes to the
// best scoring room reachable through open doors and doors whose key is
// already placed, so earlier keys open the way to later ones.
func (g *Generator) placeKeys(s level.Store, start int, colors []world.Color) string {
	found := mapset.New[world.Color]()

	for _, c := range colors {
		reached := level.Walk(s, start, level.OpenOrFound(found))

		best, weight := reached[0], 0
		for _, sector := range reached {
			// Ties go to the room reached last.
			if w := keyWeight(s, s.Room(sector), c, start); w >= weight {
				best, weight = sector, w
			}
		}
		if best == start {
			return reasonKeyInStart
		}

		r := s.Room(best)
		pos, ok := populate.Spot(r, g.rng, nil)
		if !ok {
			return reasonNoKeySpot
		}
		r.AddEntity(entities.NewKey(entities.Reader(g.rng), c, pos))
		found.Put(c)
	}
	return ""
}

// keyWeight scores how good a place room r is for the key of colour c.
// Dead ends and bottlenecks score high; the start room, rooms already holding
// a key and rooms behind a door of colour c score low.
func keyWeight(g level.Graph, r *level.Room, c world.Color, start int) int {
	w := baseWeight
	if r.Sector == start {
		w -= startPenalty
	}
	if r.HasKey() {
		w -= hasKeyPenalty
	}
	if level.HasDoorColor(g, r, c) {
		w -= ownColorPenalty
	}
	if r.Sector != start {
		switch r.ConnectionCount() {
		case 1:
			w += deadEndBonus
		case 2:
			w += bottleneckBonus
		}
	}
	return w
}

// stripPuzzle reopens every passage and removes every key.
func stripPuzzle(s level.Store) {
	for i := 0; i < s.NumPassages(); i++ {
		s.Passage(i).Unlock()
	}
	for i := 0; i < s.NumRooms(); i++ {
		s.Room(i).RemoveKind(entities.Key)
	}
}
