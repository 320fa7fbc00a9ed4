package generator

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/level"
)

// layout runs graph, geometry and corridors into a fresh level.
func layout(t *testing.T, g *Generator) *level.Level {
	t.Helper()
	lv := level.New()
	rooms := gridRooms(g.opts.GridSize)
	for _, r := range rooms {
		lv.AddRoom(r)
	}
	g.BuildGraph(rooms)
	g.BuildGeometry(lv)
	g.BuildCorridors(lv)
	return lv
}

func TestBuildGeometry_RoomsStayInSectors(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		g := newTestGenerator(seed)
		lv := layout(t, g)
		o := g.Options()

		for _, r := range lv.Rooms {
			sector := gruid.NewRange(r.Col*o.SectorWidth, r.Row*o.SectorHeight,
				(r.Col+1)*o.SectorWidth, (r.Row+1)*o.SectorHeight)
			assert.True(t, r.Bounds().In(sector), "room %d %v outside sector %v", r.Sector, r.Bounds(), sector)
			assert.Greater(t, r.BottomRight.X, r.TopLeft.X+1)
			assert.Greater(t, r.BottomRight.Y, r.TopLeft.Y+1)
			assert.NotEqual(t, r.TopLeft.X, sector.Min.X, "no margin on the left")
			assert.NotEqual(t, r.TopLeft.Y, sector.Min.Y, "no margin on the top")
		}
		require.NoError(t, lv.Validate(), "seed %d", seed)
	}
}

func TestBuildGeometry_DoorsShareOnePassage(t *testing.T) {
	lv := layout(t, newTestGenerator(4))

	edges := 0
	for _, r := range lv.Rooms {
		for _, d := range world.AllDirections() {
			n, ok := r.Neighbor(d)
			if !ok {
				assert.Nil(t, r.Doors[d])
				continue
			}
			edges++
			door := r.Doors[d]
			require.NotNil(t, door)
			assert.True(t, r.OnWall(door.Pos), "door %v not on the wall of room %d", door.Pos, r.Sector)
			other := lv.Rooms[n].Doors[d.Opposite()]
			require.NotNil(t, other)
			assert.Equal(t, door.Passage, other.Passage)
		}
	}
	assert.Equal(t, edges, 2*len(lv.Passages))

	// Locking one side is seen from the other.
	p := lv.Passages[0]
	p.Lock(world.Magenta)
	a, b := lv.Rooms[p.Rooms[0]], lv.Rooms[p.Rooms[1]]
	assert.True(t, level.HasDoorColor(lv, a, world.Magenta))
	assert.True(t, level.HasDoorColor(lv, b, world.Magenta))
}
