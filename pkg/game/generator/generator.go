// Package generator builds levels: a grid of rooms linked into a connected
// graph, room and corridor geometry, and a lock-and-key puzzle that is
// always solvable from the start room.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/balance"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
	"rogue/pkg/game/populate"
	"rogue/pkg/game/progression"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(s level.Store, number int) (Result, error)
	Name() string
}

// DefaultGenerator is the generator used when none is configured
var DefaultGenerator LevelGenerator = New()

// Result describes where the player starts on a generated level.
type Result struct {
	StartRoom int
	Player    gruid.Point
}

// Generator generates sector grid levels. It consumes a single random
// stream, so two generators built with the same seed produce the same
// sequence of levels. A Generator is not safe for concurrent use.
type Generator struct {
	opts       Options
	rng        *rand.Rand
	log        *slog.Logger
	strategy   balance.Strategy
	complexity int

	// linkGraph links the rooms of the sector grid once; BuildGraph retries
	// it until the graph is connected.
	linkGraph func(*world.Grid[*level.Room])
}

// New creates a generator with the default options, a Normal balancer and a
// time-seeded random source.
func New(opts ...Option) *Generator {
	g := &Generator{
		opts:     DefaultOptions(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:      slog.Default(),
		strategy: balance.New(balance.Normal),
	}
	g.linkGraph = g.linkRandomly
	for _, opt := range opts {
		opt(g)
	}
	g.opts = g.opts.normalize()
	return g
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	return "Sector Grid"
}

// Options returns the options in effect.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate rebuilds s from scratch as level number and returns where the
// player starts. The room graph, geometry and corridors are built first;
// the start room and a player placeholder are chosen next so keys never land
// on the player; then the puzzle is placed, the level is populated and the
// placeholder is taken out again, also when generation fails.
func (g *Generator) Generate(s level.Store, number int) (Result, error) {
	ids := entities.Reader(g.rng)
	s.Reset(entities.NewID(ids), number)

	size := g.opts.GridSize
	rooms := make([]*level.Room, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r := level.NewRoom(len(rooms), row, col)
			rooms = append(rooms, r)
			s.AddRoom(r)
		}
	}

	attempts := g.BuildGraph(rooms)
	g.BuildGeometry(s)
	g.BuildCorridors(s)

	start := g.rng.IntN(len(rooms))
	startRoom := s.Room(start)
	pos, ok := populate.Spot(startRoom, g.rng, nil)
	if !ok {
		return Result{}, fmt.Errorf("%w: no free cell for the player in room %d", ErrGenerationFailed, start)
	}
	player := entities.New(ids, entities.Player, pos)
	startRoom.AddEntity(player)
	defer startRoom.RemoveEntity(player)

	if err := g.BuildPuzzle(s, start); err != nil {
		return Result{}, fmt.Errorf("level %d: %w", number, err)
	}

	complexity := g.complexity
	if complexity <= 0 {
		complexity = progression.Complexity(number)
	}
	populate.Populate(s, start, complexity, g.strategy, g.rng)

	g.log.Info("level generated",
		"level_number", number,
		"start_room", start,
		"graph_attempts", attempts,
		"colors", g.opts.LockColors,
	)

	return Result{StartRoom: start, Player: player.Pos}, nil
}
