package ebiten

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"rogue/pkg/engine/input"
	"rogue/pkg/game/devtools"
	"rogue/pkg/game/progression"
	"rogue/pkg/game/state"
)

// New creates a viewer over the session's current level.
func New(s *state.Session, opts ...Option) *EbitenRenderer {
	e := &EbitenRenderer{
		tileSize: defaultTileSize,
		session:  s,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.RenderFrame()
	e.fitWindow()
	return e
}

// Run opens the window and blocks until it is closed.
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Rogue")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	e.logger.Info("Viewer window opening", "width", e.windowWidth, "height", e.windowHeight)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

// fitWindow sizes the window to the current level at the current tile size.
func (e *EbitenRenderer) fitWindow() {
	e.snapshotMutex.RLock()
	size := e.snapshot.size
	e.snapshotMutex.RUnlock()

	e.windowWidth = max(size.X*e.tileSize, 320)
	e.windowHeight = size.Y*e.tileSize + statusHeight
}

var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyKPAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyKPSubtract, "numpad_subtract"},
}

var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// pollInput returns the raw inputs pressed since the last frame.
func (e *EbitenRenderer) pollInput() []input.RawInput {
	var out []input.RawInput
	now := time.Now()
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, input.RawInput{Device: input.DeviceKeyboard, Code: k.code, Timestamp: now})
		}
	}
	e.gamepadIDs = ebiten.AppendGamepadIDs(e.gamepadIDs[:0])
	for _, id := range e.gamepadIDs {
		for _, b := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				out = append(out, input.RawInput{Device: input.DeviceGamepad, Code: b.code, Timestamp: now})
			}
		}
	}
	return out
}

// Update handles input; it implements ebiten.Game.
func (e *EbitenRenderer) Update() error {
	for _, raw := range e.pollInput() {
		switch input.MapToIntent(input.NewDebouncedInput(raw)).Action {
		case input.ActionQuit:
			return ebiten.Termination
		case input.ActionNextLevel:
			e.advance()
		case input.ActionScreenshot:
			e.screenshot()
		case input.ActionDumpMap:
			e.dumpMap()
		case input.ActionZoomIn:
			e.resize(e.tileSize + 2)
		case input.ActionZoomOut:
			e.resize(e.tileSize - 2)
		}
	}
	return nil
}

func (e *EbitenRenderer) dumpOptions() devtools.DumpOptions {
	return devtools.DumpOptions{
		StartRoom:  e.session.StartRoom,
		Player:     e.session.Player,
		ShowPlayer: true,
	}
}

// screenshot saves an HTML rendering of the current level.
func (e *EbitenRenderer) screenshot() {
	path, err := devtools.SaveScreenshotHTML(e.session.Current(), e.dumpOptions())
	if err != nil {
		e.logger.Error("Failed to save screenshot", "error", err)
		e.session.AddMessage(err.Error())
		return
	}
	e.session.AddMessage(gotext.Get("DUMP_WRITTEN", path))
}

// dumpMap writes the text map dump to map.txt.
func (e *EbitenRenderer) dumpMap() {
	path, err := devtools.DumpToFile("", e.session.Current(), e.dumpOptions())
	if err != nil {
		e.logger.Error("Failed to write map dump", "error", err)
		e.session.AddMessage(err.Error())
		return
	}
	e.session.AddMessage(gotext.Get("DUMP_WRITTEN", path))
}

// advance regenerates the session's level as the next one.
func (e *EbitenRenderer) advance() {
	s := e.session
	if s == nil {
		return
	}
	if err := s.Advance(); err != nil {
		if !errors.Is(err, state.ErrFinalLevel) {
			e.logger.Error("Level generation failed", "error", err)
		}
		s.AddMessage(err.Error())
		return
	}
	if e.onLevel != nil {
		e.onLevel(s.Current())
	}
	e.RenderFrame()
	e.fitWindow()
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
}

func (e *EbitenRenderer) resize(tileSize int) {
	e.tileSize = max(minTileSize, min(maxTileSize, tileSize))
	e.fitWindow()
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
}

// Draw renders the snapshot; it implements ebiten.Game.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	ts := float32(e.tileSize)
	inset := ts / 4
	for y := 0; y < snap.size.Y; y++ {
		for x := 0; x < snap.size.X; x++ {
			opts := snap.tiles[y*snap.size.X+x]
			px, py := float32(x)*ts, float32(y)*ts+statusHeight
			if opts.HasBackground {
				vector.DrawFilledRect(screen, px, py, ts, ts, opts.Color, false)
			} else {
				vector.DrawFilledRect(screen, px, py, ts, ts, colorFloor, false)
				vector.DrawFilledRect(screen, px+inset, py+inset, ts-2*inset, ts-2*inset, opts.Color, false)
			}
		}
	}

	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), statusHeight, colorPanel, false)
	status := fmt.Sprintf("%s - %s   %s", gotext.Get("LEVEL_NUMBER", snap.level),
		progression.BandName(progression.BandOf(snap.level)), gotext.Get("VIEW_HINT"))
	if msgs := e.session.Messages; len(msgs) > 0 {
		status += "   " + msgs[len(msgs)-1]
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 2)
}

// Layout implements ebiten.Game.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
