// Package balance decides what populates a level: how many items and enemies
// each room gets and which kinds, scaled by difficulty and level complexity.
package balance

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"codeberg.org/anaseto/gruid"

	"rogue/pkg/game/entities"
	"rogue/pkg/game/progression"
)

// Strategy is consulted by level population for spawn counts and entities.
type Strategy interface {
	ItemCount(rng *rand.Rand, complexity int) int
	EnemyCount(rng *rand.Rand, complexity int) int
	SpawnItem(rng *rand.Rand, complexity int, pos gruid.Point) *entities.Entity
	SpawnEnemy(rng *rand.Rand, complexity int, pos gruid.Point) *entities.Entity
}

// Difficulty is the current game difficulty.
type Difficulty int

// Difficulties
const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty parses "easy", "normal" or "hard", ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal", "":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return Normal, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Spawn limits per room
const (
	MaxItemsPerRoom   = 2
	MaxEnemiesPerRoom = 3
)

// adjustEvery is how many levels pass between difficulty adjustments.
const adjustEvery = 2

// complexityShift is how far Easy and Hard move enemy complexity.
const complexityShift = 3

// easyItemWeights biases Easy item rolls towards supplies.
var easyItemWeights = []struct {
	kind   entities.Kind
	weight float64
}{
	{entities.Food, 0.4},
	{entities.Scroll, 0.4},
	{entities.Weapon, 0.3},
	{entities.Potion, 0.3},
}

// Balancer is the default difficulty-aware Strategy.
type Balancer struct {
	difficulty Difficulty
	minEnemies int
	maxEnemies int
}

// New creates a balancer at the given difficulty.
func New(d Difficulty) *Balancer {
	b := &Balancer{}
	b.SetDifficulty(d)
	return b
}

// Difficulty returns the current difficulty.
func (b *Balancer) Difficulty() Difficulty {
	return b.difficulty
}

// SetDifficulty switches difficulty and the enemy range that goes with it.
func (b *Balancer) SetDifficulty(d Difficulty) {
	b.difficulty = d
	switch d {
	case Easy:
		b.minEnemies, b.maxEnemies = 0, 1
	case Hard:
		b.minEnemies, b.maxEnemies = 1, MaxEnemiesPerRoom
	default:
		b.difficulty = Normal
		b.minEnemies, b.maxEnemies = 0, 2
	}
}

// Reset returns the balancer to Normal.
func (b *Balancer) Reset() {
	b.SetDifficulty(Normal)
}

// Stats are the play statistics difficulty adapts to.
type Stats struct {
	Level          int
	EatenFood      int
	MissedShots    int
	BlowsInflicted int
}

// Coefficient rates how much the player is struggling, from 0 (cruising) to
// 1 (struggling).
func (s Stats) Coefficient() float64 {
	const (
		foodWeight   = 0.3
		missedWeight = 0.4
		hitsWeight   = 0.3
	)
	c := float64(s.EatenFood)*foodWeight + float64(s.MissedShots)*missedWeight - float64(s.BlowsInflicted)*hitsWeight
	return max(0, min(1, c))
}

// UpdateDifficulty moves difficulty one step every few levels: towards Easy
// when the player struggles, towards Hard when they cruise, back to Normal
// otherwise. Returns true if the difficulty changed.
func (b *Balancer) UpdateDifficulty(s Stats) bool {
	if s.Level <= 0 || s.Level%adjustEvery != 0 {
		return false
	}

	prev := b.difficulty
	next := Normal
	switch c := s.Coefficient(); {
	case c > 0.8:
		if prev == Hard {
			next = Normal
		} else {
			next = Easy
		}
	case c < 0.2:
		if prev == Easy {
			next = Normal
		} else {
			next = Hard
		}
	}
	b.SetDifficulty(next)
	return next != prev
}

// ItemCount returns how many items a room gets.
func (b *Balancer) ItemCount(rng *rand.Rand, complexity int) int {
	if b.difficulty == Hard {
		return rng.IntN(MaxItemsPerRoom)
	}
	return rng.IntN(MaxItemsPerRoom + 1)
}

// EnemyCount returns how many enemies a room gets.
func (b *Balancer) EnemyCount(rng *rand.Rand, complexity int) int {
	if b.difficulty == Hard && rng.IntN(2) == 0 {
		return 1
	}
	return b.minEnemies + rng.IntN(b.maxEnemies-b.minEnemies+1)
}

// TreasureChance returns the probability an item roll yields treasure.
func TreasureChance(complexity int) float64 {
	return float64(complexity)/float64(progression.FinalLevel-1) + 0.1
}

// SpawnItem rolls an item at pos. Deeper levels yield more treasure; Easy
// favours supplies over the rest.
func (b *Balancer) SpawnItem(rng *rand.Rand, complexity int, pos gruid.Point) *entities.Entity {
	var kind entities.Kind
	switch {
	case rng.Float64() < TreasureChance(complexity):
		kind = entities.Treasure
	case b.difficulty == Easy:
		kind = weightedItem(rng)
	default:
		kinds := entities.ItemKinds()
		kind = kinds[rng.IntN(len(kinds)-1)]
	}

	e := entities.New(entities.Reader(rng), kind, pos)
	if kind == entities.Weapon {
		e.Complexity = complexity
	}
	return e
}

func weightedItem(rng *rand.Rand) entities.Kind {
	total := 0.0
	for _, w := range easyItemWeights {
		total += w.weight
	}
	roll := rng.Float64() * total
	acc := 0.0
	for _, w := range easyItemWeights {
		acc += w.weight
		if roll < acc {
			return w.kind
		}
	}
	return easyItemWeights[len(easyItemWeights)-1].kind
}

// SpawnEnemy rolls an enemy at pos. Hard adds to its complexity, Easy takes
// away from it as long as something is left.
func (b *Balancer) SpawnEnemy(rng *rand.Rand, complexity int, pos gruid.Point) *entities.Entity {
	c := complexity
	switch b.difficulty {
	case Hard:
		c += complexityShift
	case Easy:
		if c-complexityShift > 0 {
			c -= complexityShift
		}
	}

	kinds := entities.EnemyKinds()
	e := entities.New(entities.Reader(rng), kinds[rng.IntN(len(kinds))], pos)
	e.Complexity = c
	return e
}
