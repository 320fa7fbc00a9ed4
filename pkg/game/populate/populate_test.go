package populate

import (
	"math/rand/v2"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue/pkg/game/balance"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
)

func boxLevel(t *testing.T, n int) *level.Level {
	t.Helper()
	lv := level.New()
	for i := 0; i < n; i++ {
		r := level.NewRoom(i, 0, i)
		r.TopLeft = gruid.Point{X: i * 30, Y: 0}
		r.BottomRight = gruid.Point{X: i*30 + 8, Y: 6}
		lv.AddRoom(r)
	}
	return lv
}

func TestSpot_RespectsTaken(t *testing.T) {
	lv := boxLevel(t, 1)
	r := lv.Rooms[0]
	rng := rand.New(rand.NewPCG(1, 1))

	free := r.FreeCells()
	keep := free[len(free)-1]
	p, ok := Spot(r, rng, func(q gruid.Point) bool { return q != keep })
	require.True(t, ok)
	assert.Equal(t, keep, p)

	_, ok = Spot(r, rng, func(gruid.Point) bool { return true })
	assert.False(t, ok)
}

func TestPopulate_PortalItemsEnemies(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		lv := boxLevel(t, 9)
		rng := rand.New(rand.NewPCG(seed, seed))
		start := int(seed % 9)

		Populate(lv, start, 4, balance.New(balance.Hard), rng)

		portals := 0
		for i, r := range lv.Rooms {
			items := 0
			for _, e := range r.Entities {
				assert.True(t, e.Pos.In(r.Interior()), "entity %v outside room %d", e.Pos, i)
				switch {
				case e.Kind == entities.Portal:
					portals++
					assert.NotEqual(t, start, i, "portal in the start room")
				case e.Kind.IsItem():
					items++
				}
			}
			assert.LessOrEqual(t, items, balance.MaxItemsPerRoom)
		}
		assert.Equal(t, 1, portals)

		seen := map[gruid.Point]bool{}
		for _, e := range lv.Enemies {
			require.True(t, e.Kind.IsEnemy())
			assert.False(t, seen[e.Pos], "two enemies on %v", e.Pos)
			seen[e.Pos] = true
			i, ok := lv.RoomAt(e.Pos)
			require.True(t, ok)
			assert.NotEqual(t, start, i, "enemy in the start room")
		}
		// Hard always puts at least one enemy in every other room.
		assert.GreaterOrEqual(t, len(lv.Enemies), 8)
	}
}

func TestPopulate_NilStrategyPlacesPortalOnly(t *testing.T) {
	lv := boxLevel(t, 2)
	Populate(lv, 0, 1, nil, rand.New(rand.NewPCG(5, 5)))

	assert.Empty(t, lv.Rooms[0].Entities)
	require.Len(t, lv.Rooms[1].Entities, 1)
	assert.Equal(t, entities.Portal, lv.Rooms[1].Entities[0].Kind)
	assert.Empty(t, lv.Enemies)
}
