// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/anaseto/gruid"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"rogue/pkg/engine/terminal"
	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
	"rogue/pkg/game/progression"
	"rogue/pkg/game/raster"
)

const mapDumpFilename = "map.txt"

// DumpOptions controls what a dump shows beyond the level itself.
type DumpOptions struct {
	StartRoom  int // level.NoRoom when unknown
	Player     gruid.Point
	ShowPlayer bool
	Color      bool // ANSI colours on the map
	Width      int  // legend wrap width; 0 asks the terminal
}

// ColorName returns the translated name of a colour. Uses gotext.Get with
// constant keys so the strings can be extracted.
func ColorName(c world.Color) string {
	switch c {
	case world.Red:
		return gotext.Get("COLOR_RED")
	case world.Green:
		return gotext.Get("COLOR_GREEN")
	case world.LightGreen:
		return gotext.Get("COLOR_LIGHT_GREEN")
	case world.White:
		return gotext.Get("COLOR_WHITE")
	case world.Yellow:
		return gotext.Get("COLOR_YELLOW")
	case world.Orange:
		return gotext.Get("COLOR_ORANGE")
	case world.Magenta:
		return gotext.Get("COLOR_MAGENTA")
	case world.Blue:
		return gotext.Get("COLOR_BLUE")
	case world.Cyan:
		return gotext.Get("COLOR_CYAN")
	default:
		return c.String()
	}
}

// paint returns the terminal colour a level colour is printed in.
func paint(c world.Color) color.Color {
	switch c {
	case world.Red:
		return color.FgRed
	case world.Green:
		return color.FgGreen
	case world.LightGreen:
		return color.FgLightGreen
	case world.White:
		return color.FgWhite
	case world.Yellow:
		return color.FgYellow
	case world.Orange:
		return color.FgLightRed
	case world.Magenta:
		return color.FgMagenta
	case world.Blue:
		return color.FgBlue
	case world.Cyan:
		return color.FgCyan
	default:
		return color.FgDefault
	}
}

// mark is a cell drawn over the terrain.
type mark struct {
	glyph rune
	paint color.Color
}

// marks collects doors and entities with the glyph and colour they are
// printed with.
func marks(lv *level.Level, opts DumpOptions) map[gruid.Point]mark {
	out := make(map[gruid.Point]mark)
	for _, r := range lv.Rooms {
		for _, d := range r.Doors {
			if d == nil {
				continue
			}
			c := world.Unlocked
			if p := lv.Passage(d.Passage); p != nil {
				c = p.Color
			}
			out[d.Pos] = mark{'&', paint(c)}
		}
		for _, e := range r.Entities {
			out[e.Pos] = entityMark(e)
		}
	}
	for _, e := range lv.Enemies {
		out[e.Pos] = entityMark(e)
	}
	if opts.ShowPlayer {
		out[opts.Player] = mark{'@', color.FgBlue}
	}
	return out
}

func entityMark(e *entities.Entity) mark {
	switch {
	case e.Kind == entities.Key:
		return mark{raster.KindGlyph(e.Kind), paint(e.Color)}
	case e.Kind == entities.Portal:
		return mark{raster.KindGlyph(e.Kind), color.FgYellow}
	case e.Kind.IsEnemy():
		return mark{raster.KindGlyph(e.Kind), color.FgRed}
	default:
		return mark{raster.KindGlyph(e.Kind), color.FgMagenta}
	}
}

// writeMapGrid writes the rendered level to w, one line per row.
func writeMapGrid(w io.Writer, lv *level.Level, opts DumpOptions) {
	gd := raster.Render(lv)
	over := marks(lv, opts)
	size := gd.Size()

	var line strings.Builder
	for y := 0; y < size.Y; y++ {
		line.Reset()
		for x := 0; x < size.X; x++ {
			p := gruid.Point{X: x, Y: y}
			glyph := raster.Glyph(gd.At(p))
			pc := color.FgDefault
			switch gd.At(p) {
			case raster.Wall:
				pc = color.FgLightRed
			case raster.Floor:
				pc = color.FgCyan
			}
			if m, ok := over[p]; ok {
				glyph, pc = m.glyph, m.paint
			}
			if opts.Color && glyph != ' ' {
				line.WriteString(pc.Sprint(string(glyph)))
			} else {
				line.WriteRune(glyph)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// legend returns the symbol legend, wrapped to width.
func legend(width int) []string {
	entries := []string{
		"# = " + gotext.Get("LEGEND_WALL"),
		". = " + gotext.Get("LEGEND_FLOOR"),
		"+ = " + gotext.Get("LEGEND_CORRIDOR"),
		"& = " + gotext.Get("LEGEND_DOOR"),
		"> = " + gotext.Get("LEGEND_KEY"),
		"! = " + gotext.Get("LEGEND_PORTAL"),
		"%/~?* = " + gotext.Get("LEGEND_ITEM"),
		"ZVGOSM = " + gotext.Get("LEGEND_ENEMY"),
		"@ = " + gotext.Get("LEGEND_PLAYER"),
	}

	var lines []string
	var cur string
	for _, e := range entries {
		switch {
		case cur == "":
			cur = e
		case len(cur)+2+len(e) > width:
			lines = append(lines, cur)
			cur = e
		default:
			cur += "  " + e
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// Dump writes a full debug dump of lv to w: metadata, legend, map and
// detailed room, passage, corridor and entity lists. Format is human- and
// LLM-readable (sections, key: value, consistent structure).
func Dump(w io.Writer, lv *level.Level, opts DumpOptions) error {
	if lv == nil {
		return fmt.Errorf("no level")
	}
	width := opts.Width
	if width <= 0 {
		width = terminal.Width(w)
	}
	bounds := raster.Bounds(lv)
	size := bounds.Size()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, puzzle, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", lv.Number)
	fmt.Fprintf(w, "level_id: %s\n", lv.ID)
	fmt.Fprintf(w, "band: %s\n", progression.BandName(progression.BandOf(lv.Number)))
	fmt.Fprintf(w, "map_width: %d\n", size.X)
	fmt.Fprintf(w, "map_height: %d\n", size.Y)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "rooms: %d\n", len(lv.Rooms))
	fmt.Fprintf(w, "passages: %d\n", len(lv.Passages))
	fmt.Fprintf(w, "corridors: %d\n", len(lv.Corridors))
	fmt.Fprintf(w, "start_room: %d\n", opts.StartRoom)
	if opts.ShowPlayer {
		fmt.Fprintf(w, "player: %d,%d\n", opts.Player.X, opts.Player.Y)
	}
	if opts.StartRoom != level.NoRoom {
		fmt.Fprintf(w, "reachable: %v\n", lv.Reachable(opts.StartRoom))
		fmt.Fprintf(w, "solvable: %v\n", lv.Solvable(opts.StartRoom))
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for _, l := range legend(width) {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, lv, opts)
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities (all with x,y and state) ---")

	fmt.Fprintln(w, "Rooms:")
	for _, r := range lv.Rooms {
		fmt.Fprintf(w, "  sector: %d row: %d col: %d top_left: %d,%d bottom_right: %d,%d connections: %d start: %v\n",
			r.Sector, r.Row, r.Col, r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y,
			r.ConnectionCount(), r.Sector == opts.StartRoom)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Passages:")
	for i, p := range lv.Passages {
		fmt.Fprintf(w, "  index: %d rooms: %d,%d color: %q open: %v\n", i, p.Rooms[0], p.Rooms[1], ColorName(p.Color), p.Open)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Corridors:")
	for _, c := range lv.Corridors {
		points := make([]string, len(c.Points))
		for i, p := range c.Points {
			points[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
		}
		fmt.Fprintf(w, "  type: %s rooms: %d,%d points: %s\n", c.Type, c.Rooms[0], c.Rooms[1], strings.Join(points, " "))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Keys:")
	for _, k := range lv.Keys() {
		room, _ := lv.RoomAt(k.Pos)
		fmt.Fprintf(w, "  x: %d y: %d room: %d color: %q\n", k.Pos.X, k.Pos.Y, room, ColorName(k.Color))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Items:")
	for _, r := range lv.Rooms {
		for _, e := range r.Entities {
			if e.Kind == entities.Key {
				continue
			}
			fmt.Fprintf(w, "  x: %d y: %d room: %d kind: %s complexity: %d\n", e.Pos.X, e.Pos.Y, r.Sector, e.Kind, e.Complexity)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Enemies:")
	for _, e := range lv.Enemies {
		room, _ := lv.RoomAt(e.Pos)
		fmt.Fprintf(w, "  x: %d y: %d room: %d kind: %s complexity: %d\n", e.Pos.X, e.Pos.Y, room, e.Kind, e.Complexity)
	}

	return nil
}

// DumpToFile writes the dump of lv to path, map.txt when path is empty, and
// returns the absolute path written.
func DumpToFile(path string, lv *level.Level, opts DumpOptions) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts.Color = false
	if err := Dump(f, lv, opts); err != nil {
		return "", err
	}
	return absPath, nil
}
