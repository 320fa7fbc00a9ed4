package devtools

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"rogue/pkg/engine/locale"
	"rogue/pkg/engine/world"
	"rogue/pkg/game/generator"
	"rogue/pkg/game/level"
	"rogue/pkg/game/raster"
)

func generated(t *testing.T, seed uint64) (*level.Level, generator.Result) {
	t.Helper()

	_, err := locale.Setup(language.English)
	require.NoError(t, err)

	lv := level.New()
	gen := generator.New(
		generator.WithSeed(seed),
		generator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	res, err := gen.Generate(lv, 1)
	require.NoError(t, err)
	return lv, res
}

func TestDump_Sections(t *testing.T) {
	lv, res := generated(t, 7)

	var buf bytes.Buffer
	err := Dump(&buf, lv, DumpOptions{StartRoom: res.StartRoom, Player: res.Player, ShowPlayer: true, Width: 200})
	require.NoError(t, err)
	out := buf.String()

	for _, section := range []string{"--- Metadata ---", "--- Legend (cell symbols) ---", "--- Map ---", "Rooms:", "Passages:", "Corridors:", "Keys:", "Items:", "Enemies:"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "level: 1\n")
	assert.Contains(t, out, "band: Upper halls\n")
	assert.Contains(t, out, "solvable: true\n")
	assert.Contains(t, out, "# = wall")
	assert.Contains(t, out, "@")
	assert.NotContains(t, out, "\x1b[", "plain dump should carry no escape codes")

	keys := strings.Count(out[strings.Index(out, "Keys:"):strings.Index(out, "Items:")], "  x: ")
	assert.Equal(t, len(lv.Keys()), keys)
}

func TestDump_MapRows(t *testing.T) {
	lv, res := generated(t, 3)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, lv, DumpOptions{StartRoom: res.StartRoom, Width: 80}))
	out := buf.String()

	start := strings.Index(out, "--- Map ---\n") + len("--- Map ---\n")
	end := strings.Index(out, "--- Entities")
	rows := strings.Split(strings.TrimRight(out[start:end], "\n"), "\n")
	assert.Len(t, rows, raster.Bounds(lv).Size().Y, "map rows")

	doors := 0
	for _, r := range lv.Rooms {
		for _, d := range r.Doors {
			if d != nil {
				doors++
			}
		}
	}
	assert.Equal(t, doors, strings.Count(out[start:end], "&"))
}

func TestDump_NilLevel(t *testing.T) {
	assert.Error(t, Dump(io.Discard, nil, DumpOptions{}))
}

func TestLegend_Wraps(t *testing.T) {
	_, err := locale.Setup(language.English)
	require.NoError(t, err)

	for _, l := range legend(30) {
		assert.LessOrEqual(t, len(l), 30, "line %q", l)
	}
	assert.Len(t, legend(1000), 1)
}

func TestColorName_Translated(t *testing.T) {
	t.Cleanup(func() { locale.Setup(language.English) })

	_, err := locale.Setup(language.German)
	require.NoError(t, err)
	assert.Equal(t, "blau", ColorName(world.Blue))

	_, err = locale.Setup(language.English)
	require.NoError(t, err)
	assert.Equal(t, "blue", ColorName(world.Blue))
}

func TestDumpToFile(t *testing.T) {
	lv, res := generated(t, 11)

	path := filepath.Join(t.TempDir(), "level.txt")
	got, err := DumpToFile(path, lv, DumpOptions{StartRoom: res.StartRoom, Color: true})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== MAP DUMP DEBUG"))
	assert.NotContains(t, string(data), "\x1b[")
}
