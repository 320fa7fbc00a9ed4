package balance

import (
	"math/rand/v2"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogue/pkg/game/entities"
)

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, Hard, d)

	d, err = ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, Normal, d)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestBalancer_CountsStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	ranges := map[Difficulty][2]int{Easy: {0, 1}, Normal: {0, 2}, Hard: {1, 3}}

	for d, r := range ranges {
		b := New(d)
		for i := 0; i < 500; i++ {
			n := b.EnemyCount(rng, 5)
			assert.GreaterOrEqual(t, n, r[0], "%v enemy count", d)
			assert.LessOrEqual(t, n, r[1], "%v enemy count", d)

			items := b.ItemCount(rng, 5)
			assert.GreaterOrEqual(t, items, 0)
			if d == Hard {
				assert.Less(t, items, MaxItemsPerRoom)
			} else {
				assert.LessOrEqual(t, items, MaxItemsPerRoom)
			}
		}
	}
}

func TestBalancer_SpawnItem(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	pos := gruid.Point{X: 4, Y: 5}

	for _, d := range []Difficulty{Easy, Normal, Hard} {
		b := New(d)
		for i := 0; i < 200; i++ {
			e := b.SpawnItem(rng, 3, pos)
			require.True(t, e.Kind.IsItem(), "%v spawned %v", d, e.Kind)
			assert.NotEqual(t, entities.Key, e.Kind)
			assert.Equal(t, pos, e.Pos)
			if e.Kind == entities.Weapon {
				assert.Equal(t, 3, e.Complexity)
			}
		}
	}
}

func TestTreasureChance_GrowsWithDepth(t *testing.T) {
	assert.InDelta(t, 0.1, TreasureChance(0), 1e-9)
	assert.Less(t, TreasureChance(2), TreasureChance(10))
}

func TestBalancer_SpawnEnemyComplexity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	pos := gruid.Point{X: 1, Y: 1}

	assert.Equal(t, 8, New(Hard).SpawnEnemy(rng, 5, pos).Complexity)
	assert.Equal(t, 5, New(Normal).SpawnEnemy(rng, 5, pos).Complexity)
	assert.Equal(t, 2, New(Easy).SpawnEnemy(rng, 5, pos).Complexity)
	assert.Equal(t, 2, New(Easy).SpawnEnemy(rng, 2, pos).Complexity)

	e := New(Normal).SpawnEnemy(rng, 1, pos)
	assert.True(t, e.Kind.IsEnemy())
}

func TestBalancer_UpdateDifficulty(t *testing.T) {
	struggling := Stats{Level: 2, EatenFood: 2, MissedShots: 2}
	cruising := Stats{Level: 2, BlowsInflicted: 5}

	b := New(Normal)
	assert.False(t, b.UpdateDifficulty(Stats{Level: 3, EatenFood: 9}), "odd levels never adjust")
	assert.Equal(t, Normal, b.Difficulty())

	assert.True(t, b.UpdateDifficulty(struggling))
	assert.Equal(t, Easy, b.Difficulty())
	assert.False(t, b.UpdateDifficulty(struggling))
	assert.Equal(t, Easy, b.Difficulty())

	assert.True(t, b.UpdateDifficulty(cruising))
	assert.Equal(t, Normal, b.Difficulty())
	assert.True(t, b.UpdateDifficulty(cruising))
	assert.Equal(t, Hard, b.Difficulty())

	b.UpdateDifficulty(Stats{Level: 4, EatenFood: 1, MissedShots: 1})
	assert.Equal(t, Normal, b.Difficulty(), "middling play returns to normal")

	b.SetDifficulty(Hard)
	b.Reset()
	assert.Equal(t, Normal, b.Difficulty())
}
