package level

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
)

// Walk runs a breadth-first search over room connections from start and
// returns the sectors reached, in visit order. cross decides whether a
// passage may be crossed; with a nil cross every connection is followed,
// door or not.
func Walk(g Graph, start int, cross func(*Passage) bool) []int {
	if g.Room(start) == nil {
		return nil
	}

	visited := mapset.New[int]()
	visited.Put(start)
	order := []int{start}

	q := queue.New[int]()
	q.Enqueue(start)

	for !q.Empty() {
		current := g.Room(q.Dequeue())
		for _, d := range world.AllDirections() {
			next, ok := current.Neighbor(d)
			if !ok || visited.Has(next) {
				continue
			}
			if cross != nil {
				p := DoorPassage(g, current, d)
				if p == nil || !cross(p) {
					continue
				}
			}
			visited.Put(next)
			order = append(order, next)
			q.Enqueue(next)
		}
	}

	return order
}

// OpenOrFound lets a walk cross open passages and those locked with a colour
// in found.
func OpenOrFound(found mapset.Set[world.Color]) func(*Passage) bool {
	return func(p *Passage) bool {
		return p.Open || found.Has(p.Color)
	}
}

// Collect walks from start the way a player would: every key in a reached
// room is picked up, and a locked passage can be crossed once a key of its
// colour is held. The walk restarts after each new colour until nothing new
// is found. Returns the sectors reached.
func Collect(g Graph, start int) []int {
	found := mapset.New[world.Color]()
	for {
		order := Walk(g, start, OpenOrFound(found))

		picked := false
		for _, s := range order {
			for _, e := range g.Room(s).Entities {
				if e.Kind == entities.Key && !found.Has(e.Color) {
					found.Put(e.Color)
					picked = true
				}
			}
		}
		if !picked {
			return order
		}
	}
}

// Reachable reports whether every room can be reached from start over room
// connections, ignoring locks.
func (l *Level) Reachable(start int) bool {
	return len(Walk(l, start, nil)) == len(l.Rooms)
}

// Solvable reports whether a player starting in start can reach every room,
// picking up keys on the way.
func (l *Level) Solvable(start int) bool {
	return len(Collect(l, start)) == len(l.Rooms)
}
