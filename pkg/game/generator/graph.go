package generator

import (
	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/level"
)

// roomList adapts a bare room slice to level.Graph for link-only walks.
type roomList []*level.Room

func (l roomList) NumRooms() int { return len(l) }

func (l roomList) Room(i int) *level.Room {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l roomList) NumPassages() int { return 0 }

func (l roomList) Passage(int) *level.Passage { return nil }

// sectorGrid lays rooms out on their grid cells. It is scratch space for a
// single generation call.
func sectorGrid(rooms []*level.Room, size int) *world.Grid[*level.Room] {
	grid := world.NewGrid[*level.Room](size, size)
	for _, r := range rooms {
		grid.Set(r.Cell(), r)
	}
	return grid
}

// BuildGraph links grid-adjacent rooms with a randomized depth-first walk,
// retrying until every room reaches every other. After MaxGraphAttempts the
// serpentine layout is used. Returns the number of attempts made.
func (g *Generator) BuildGraph(rooms []*level.Room) int {
	grid := sectorGrid(rooms, g.opts.GridSize)

	for attempt := 1; attempt <= g.opts.MaxGraphAttempts; attempt++ {
		g.linkGraph(grid)
		if connected(rooms) {
			return attempt
		}
		g.log.Debug("regenerating room graph", "attempt", attempt, "reason", "disconnected")
		unlinkAll(rooms)
	}

	g.log.Warn("room graph retries exhausted, using serpentine layout",
		"attempts", g.opts.MaxGraphAttempts)
	linkSerpentine(grid)
	return g.opts.MaxGraphAttempts
}

func (g *Generator) linkRandomly(grid *world.Grid[*level.Room]) {
	start := gridCell(grid, g.rng.IntN(grid.Rows()*grid.Cols()))

	visited := mapset.New[int]()
	visited.Put(start.Sector)
	todo := stack.New[*level.Room]()
	todo.Push(start)

	for todo.Size() > 0 {
		current := todo.Pop()

		dirs := world.AllDirections()
		g.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, d := range dirs {
			next, ok := grid.Neighbor(current.Cell(), d)
			if !ok || next == nil {
				continue
			}
			if visited.Has(next.Sector) && g.rng.Float64() >= g.opts.LinkProbability {
				continue
			}
			level.Link(current, next, d)
			if !visited.Has(next.Sector) {
				visited.Put(next.Sector)
				todo.Push(next)
			}
		}
	}
}

func gridCell(grid *world.Grid[*level.Room], i int) *level.Room {
	return grid.Get(gruid.Point{X: i % grid.Cols(), Y: i / grid.Cols()})
}

// connected checks reachability from every room, not just one, so a broken
// reciprocal link is caught too.
func connected(rooms []*level.Room) bool {
	g := roomList(rooms)
	for i := range rooms {
		if len(level.Walk(g, i, nil)) != len(rooms) {
			return false
		}
	}
	return true
}

func unlinkAll(rooms []*level.Room) {
	for _, r := range rooms {
		r.ClearLinks()
	}
}

// linkSerpentine links every row end to end and joins consecutive rows at
// alternating ends, which always yields a connected graph.
func linkSerpentine(grid *world.Grid[*level.Room]) {
	for row := 0; row < grid.Rows(); row++ {
		cells := grid.Row(row)
		for col := 0; col+1 < len(cells); col++ {
			level.Link(cells[col], cells[col+1], world.Right)
		}
		if row+1 == grid.Rows() {
			continue
		}
		col := grid.Cols() - 1
		if row%2 == 1 {
			col = 0
		}
		below := grid.Row(row + 1)
		level.Link(cells[col], below[col], world.Down)
	}
}
