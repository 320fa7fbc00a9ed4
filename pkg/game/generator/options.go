package generator

import (
	"log/slog"
	"math/rand/v2"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/balance"
)

// Options holds the layout and retry parameters of a Generator.
type Options struct {
	GridSize     int // Rooms per side of the sector grid
	SectorWidth  int // Cells per sector horizontally
	SectorHeight int // Cells per sector vertically
	CornerXRange int // Horizontal margin range a room corner is drawn from
	CornerYRange int // Vertical margin range a room corner is drawn from

	LinkProbability float64 // Chance to link an already visited neighbour
	LockProbability float64 // Chance per side to lock an open door
	LockColors      int     // Distinct lock colours per level

	MaxGraphAttempts  int // Graph retries before the serpentine layout
	MaxPuzzleAttempts int // Puzzle retries before giving up
}

// DefaultOptions returns the standard 3x3 layout on a 90x30 map.
func DefaultOptions() Options {
	return Options{
		GridSize:          3,
		SectorWidth:       30,
		SectorHeight:      10,
		CornerXRange:      12,
		CornerYRange:      2,
		LinkProbability:   0.3,
		LockProbability:   0.4,
		LockColors:        3,
		MaxGraphAttempts:  1000,
		MaxPuzzleAttempts: 10000,
	}
}

// MapSize returns the size of the whole map in cells.
func (o Options) MapSize() (width, height int) {
	return o.GridSize * o.SectorWidth, o.GridSize * o.SectorHeight
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation reproducible: the same seed yields the same
// sequence of levels.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		var key [32]byte
		for i := 0; i < 8; i++ {
			key[i] = byte(seed >> (8 * i))
		}
		g.rng = rand.New(rand.NewChaCha8(key))
	}
}

// WithRand uses rng as the random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger sets the logger regenerations are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithOptions replaces all layout and retry parameters.
func WithOptions(o Options) Option {
	return func(g *Generator) {
		g.opts = o
	}
}

// WithGridSize sets the number of rooms per side.
func WithGridSize(n int) Option {
	return func(g *Generator) {
		g.opts.GridSize = n
	}
}

// WithLockColors sets how many distinct lock colours a level uses.
func WithLockColors(n int) Option {
	return func(g *Generator) {
		g.opts.LockColors = n
	}
}

// WithMaxGraphAttempts caps room graph retries.
func WithMaxGraphAttempts(n int) Option {
	return func(g *Generator) {
		g.opts.MaxGraphAttempts = n
	}
}

// WithMaxPuzzleAttempts caps puzzle retries.
func WithMaxPuzzleAttempts(n int) Option {
	return func(g *Generator) {
		g.opts.MaxPuzzleAttempts = n
	}
}

// WithStrategy sets the population strategy. A nil strategy leaves levels
// with the portal only.
func WithStrategy(s balance.Strategy) Option {
	return func(g *Generator) {
		g.strategy = s
	}
}

// WithComplexity fixes the complexity entities are spawned with instead of
// deriving it from the level number.
func WithComplexity(c int) Option {
	return func(g *Generator) {
		g.complexity = c
	}
}

// normalize clamps options into a range generation can work with.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.GridSize < 1 {
		o.GridSize = def.GridSize
	}
	if o.CornerXRange < 1 {
		o.CornerXRange = 1
	}
	if o.CornerYRange < 1 {
		o.CornerYRange = 1
	}
	// A room needs at least one interior cell between its walls and a free
	// column or row between it and the next sector.
	if o.SectorWidth < 2*o.CornerXRange+4 {
		o.SectorWidth = 2*o.CornerXRange + 4
	}
	if o.SectorHeight < 2*o.CornerYRange+4 {
		o.SectorHeight = 2*o.CornerYRange + 4
	}
	o.LockColors = max(0, min(o.LockColors, len(world.LockColors())))
	if o.MaxGraphAttempts < 1 {
		o.MaxGraphAttempts = 1
	}
	if o.MaxPuzzleAttempts < 1 {
		o.MaxPuzzleAttempts = 1
	}
	return o
}
