package generator

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
)

// rowOfRooms lays out n rooms on the top row of the grid, linked left to
// right, with geometry and corridors.
func rowOfRooms(t *testing.T, g *Generator, n int) *level.Level {
	t.Helper()
	lv := level.New()
	for i := 0; i < n; i++ {
		lv.AddRoom(level.NewRoom(i, 0, i))
	}
	for i := 0; i+1 < n; i++ {
		level.Link(lv.Rooms[i], lv.Rooms[i+1], world.Right)
	}
	g.BuildGeometry(lv)
	g.BuildCorridors(lv)
	require.NoError(t, lv.Validate())
	return lv
}

func TestKeyWeight(t *testing.T) {
	g := newTestGenerator(1)
	lv := rowOfRooms(t, g, 3)
	start := 0

	// Room 2 is a dead end, room 1 a bottleneck.
	assert.Equal(t, baseWeight-startPenalty, keyWeight(lv, lv.Rooms[0], world.Blue, start))
	assert.Equal(t, baseWeight+bottleneckBonus, keyWeight(lv, lv.Rooms[1], world.Blue, start))
	assert.Equal(t, baseWeight+deadEndBonus, keyWeight(lv, lv.Rooms[2], world.Blue, start))

	lv.Passages[1].Lock(world.Blue)
	assert.Equal(t, baseWeight+deadEndBonus-ownColorPenalty, keyWeight(lv, lv.Rooms[2], world.Blue, start))
	assert.Equal(t, baseWeight+deadEndBonus, keyWeight(lv, lv.Rooms[2], world.Red, start))

	lv.Rooms[1].AddEntity(entities.NewKey(nil, world.Red, gruid.Point{}))
	assert.Equal(t, baseWeight+bottleneckBonus-hasKeyPenalty-ownColorPenalty,
		keyWeight(lv, lv.Rooms[1], world.Blue, start))
}

func TestPlaceKeys_TiesGoToLastReachedRoom(t *testing.T) {
	g := newTestGenerator(2)
	lv := rowOfRooms(t, g, 3)

	// From the middle room the walk reaches room 2 before room 0; both are
	// dead ends with equal weight.
	reason := g.placeKeys(lv, 1, []world.Color{world.Blue})
	require.Empty(t, reason)
	assert.True(t, lv.Rooms[0].HasKey())
	assert.False(t, lv.Rooms[2].HasKey())
}

func TestPlaceKeys_StartRoomForcesRegeneration(t *testing.T) {
	g := newTestGenerator(3)
	lv := rowOfRooms(t, g, 2)
	lv.Passages[0].Lock(world.Cyan)

	// Nothing but the start room is reachable without the cyan key.
	assert.Equal(t, reasonKeyInStart, g.placeKeys(lv, 0, []world.Color{world.Cyan}))
	assert.Empty(t, lv.Keys())
}

func TestPlaceKeys_EarlierKeysOpenTheWay(t *testing.T) {
	g := newTestGenerator(4)
	lv := rowOfRooms(t, g, 4)
	lv.Passages[2].Lock(world.Red)

	reason := g.placeKeys(lv, 0, []world.Color{world.Red, world.Green})
	require.Empty(t, reason)

	keys := lv.Keys()
	require.Len(t, keys, 2)
	// Room 2 borders the red door, so red goes to room 1. Green then
	// reaches the dead end past the red door.
	assert.Equal(t, world.Red, keys[0].Color)
	assert.True(t, lv.Rooms[1].Contains(keys[0].Pos))
	assert.Equal(t, world.Green, keys[1].Color)
	assert.True(t, lv.Rooms[3].Contains(keys[1].Pos))
	assert.True(t, lv.Solvable(0))
}

func TestPlaceLocks_SkipsStartRoomAndUsesCandidates(t *testing.T) {
	opts := DefaultOptions()
	opts.LockProbability = 1
	g := newTestGenerator(5, WithOptions(opts))
	lv := rowOfRooms(t, g, 3)

	used := g.placeLocks(lv, 0, []world.Color{world.White})
	assert.Equal(t, []world.Color{world.White}, used)
	for _, p := range lv.Passages {
		assert.False(t, p.Open)
		assert.Equal(t, world.White, p.Color)
	}
}

func TestPlaceLocks_ZeroProbabilityLeavesDoorsOpen(t *testing.T) {
	opts := DefaultOptions()
	opts.LockProbability = 0
	g := newTestGenerator(6, WithOptions(opts))
	lv := rowOfRooms(t, g, 3)

	assert.Empty(t, g.placeLocks(lv, 1, []world.Color{world.Blue, world.Red}))
	for _, p := range lv.Passages {
		assert.True(t, p.Open)
	}
}

func TestPickColors_Distinct(t *testing.T) {
	g := newTestGenerator(7, WithLockColors(4))
	for i := 0; i < 50; i++ {
		colors := g.pickColors()
		require.Len(t, colors, 4)
		seen := map[world.Color]bool{}
		for _, c := range colors {
			assert.True(t, c.IsLock())
			assert.False(t, seen[c], "colour %v picked twice", c)
			seen[c] = true
		}
	}
}

func TestStripPuzzle(t *testing.T) {
	g := newTestGenerator(8)
	lv := rowOfRooms(t, g, 3)
	lv.Passages[0].Lock(world.Blue)
	lv.Rooms[1].AddEntity(entities.NewKey(nil, world.Blue, gruid.Point{}))
	lv.Rooms[1].AddEntity(entities.New(nil, entities.Food, gruid.Point{X: 1}))

	stripPuzzle(lv)

	for _, p := range lv.Passages {
		assert.True(t, p.Open)
		assert.Equal(t, world.Unlocked, p.Color)
	}
	assert.Empty(t, lv.Keys())
	assert.Len(t, lv.Rooms[1].Entities, 1, "non-key entities survive")
}

func TestBuildPuzzle_SolvableAndStable(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		lv := layout(t, g)
		start := int(seed % 9)

		before, err := lv.Clone()
		require.NoError(t, err)

		require.NoError(t, g.BuildPuzzle(lv, start), "seed %d", seed)
		assert.True(t, lv.Solvable(start), "seed %d", seed)
		require.NoError(t, lv.Validate())

		// Only lock state changes: rooms, doors and corridors are untouched.
		for i, r := range lv.Rooms {
			assert.Equal(t, before.Rooms[i].TopLeft, r.TopLeft)
			assert.Equal(t, before.Rooms[i].BottomRight, r.BottomRight)
			assert.Equal(t, before.Rooms[i].Neighbors, r.Neighbors)
		}
		assert.Equal(t, before.Corridors, lv.Corridors)
	}
}
