package ebiten

import (
	"image/color"
	"log/slog"
	"sync"

	"codeberg.org/anaseto/gruid"
	"github.com/hajimehoshi/ebiten/v2"

	"rogue/pkg/game/level"
	"rogue/pkg/game/state"
)

// CellRenderOptions describes how a map cell is drawn.
type CellRenderOptions struct {
	Color         color.Color
	HasBackground bool // fill the whole tile instead of an inset square
}

// renderSnapshot is an immutable copy of what Draw needs, captured after
// every level change.
type renderSnapshot struct {
	valid     bool
	level     int
	startRoom int
	player    gruid.Point
	size      gruid.Point
	tiles     []CellRenderOptions // row-major, size.X*size.Y
}

// EbitenRenderer shows the session's current level in a window. R
// advances to the next level.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	gamepadIDs []ebiten.GamepadID

	session *state.Session
	logger  *slog.Logger

	// onLevel is called with every newly generated level
	onLevel func(*level.Level)

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex
}

// Option configures an EbitenRenderer.
type Option func(*EbitenRenderer)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *EbitenRenderer) {
		e.logger = l
	}
}

// WithTileSize sets the initial tile size in pixels.
func WithTileSize(n int) Option {
	return func(e *EbitenRenderer) {
		e.tileSize = max(minTileSize, min(maxTileSize, n))
	}
}

// OnLevel registers a callback run after every level the viewer generates,
// such as a background save.
func OnLevel(fn func(*level.Level)) Option {
	return func(e *EbitenRenderer) {
		e.onLevel = fn
	}
}
