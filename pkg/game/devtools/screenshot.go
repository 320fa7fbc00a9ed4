package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/leonelquinteros/gotext"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
	"rogue/pkg/game/raster"
)

const screenshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #ff8c00; }
        .floor { color: #008b8b; }
        .corridor { color: #aaa; }
        .portal { color: #ffff00; font-weight: bold; }
        .item { color: #bb86fc; }
        .enemy { color: #ff4444; font-weight: bold; }
        .void { color: #1a1a2e; }
    </style>
`

// cssColor maps a level colour to the CSS colour doors and keys use.
func cssColor(c world.Color) string {
	switch c {
	case world.Red:
		return "#ff4444"
	case world.Green:
		return "#00aa00"
	case world.LightGreen:
		return "#66ff66"
	case world.White:
		return "#ffffff"
	case world.Yellow:
		return "#ffff00"
	case world.Orange:
		return "#ff8c00"
	case world.Magenta:
		return "#ff44ff"
	case world.Blue:
		return "#4444ff"
	case world.Cyan:
		return "#00ffff"
	default:
		return "#eee"
	}
}

// WriteHTML writes lv as a standalone HTML page to w.
func WriteHTML(w io.Writer, lv *level.Level, opts DumpOptions) error {
	if lv == nil {
		return fmt.Errorf("no level")
	}

	gd := raster.Render(lv)
	over := map[gruid.Point]string{}
	for _, r := range lv.Rooms {
		for _, d := range r.Doors {
			if d == nil {
				continue
			}
			c := world.Unlocked
			if p := lv.Passage(d.Passage); p != nil {
				c = p.Color
			}
			over[d.Pos] = fmt.Sprintf(`<span style="color:%s">&amp;</span>`, cssColor(c))
		}
		for _, e := range r.Entities {
			over[e.Pos] = entityHTML(e)
		}
	}
	for _, e := range lv.Enemies {
		over[e.Pos] = entityHTML(e)
	}
	if opts.ShowPlayer {
		over[opts.Player] = `<span class="player">@</span>`
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
`)
	fmt.Fprintf(&b, "    <title>%s</title>\n", html.EscapeString(gotext.Get("LEVEL_NUMBER", lv.Number)))
	b.WriteString(screenshotStyle)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(gotext.Get("LEVEL_NUMBER", lv.Number)))
	b.WriteString(`    <div class="map-container">` + "\n")

	size := gd.Size()
	for y := 0; y < size.Y; y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < size.X; x++ {
			p := gruid.Point{X: x, Y: y}
			if s, ok := over[p]; ok {
				b.WriteString(s)
				continue
			}
			cell := gd.At(p)
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, cellClass(cell), html.EscapeString(string(raster.Glyph(cell))))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("    </div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func cellClass(c rl.Cell) string {
	switch c {
	case raster.Wall:
		return "wall"
	case raster.Floor:
		return "floor"
	case raster.Corridor:
		return "corridor"
	default:
		return "void"
	}
}

func entityHTML(e *entities.Entity) string {
	glyph := html.EscapeString(string(raster.KindGlyph(e.Kind)))
	switch {
	case e.Kind == entities.Key:
		return fmt.Sprintf(`<span style="color:%s">%s</span>`, cssColor(e.Color), glyph)
	case e.Kind == entities.Portal:
		return `<span class="portal">` + glyph + `</span>`
	case e.Kind.IsEnemy():
		return `<span class="enemy">` + glyph + `</span>`
	default:
		return `<span class="item">` + glyph + `</span>`
	}
}

// SaveScreenshotHTML saves lv as an HTML file in the working directory and
// returns its name.
func SaveScreenshotHTML(lv *level.Level, opts DumpOptions) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTML(f, lv, opts); err != nil {
		return "", err
	}
	return filename, nil
}
