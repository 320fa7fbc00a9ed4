// Package raster draws a level onto a terrain grid that views and dumps
// share, and checks the drawn corridors with a path search.
package raster

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"

	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
)

// Cell values of a rendered level. Entities are drawn over terrain.
const (
	Void rl.Cell = iota
	Wall
	Floor
	Corridor
	Door
	LockedDoor
	Portal
	Key
	Item
	Enemy
	Player
)

// Bounds returns the smallest range, anchored at the origin, that holds every
// room and corridor of lv.
func Bounds(lv *level.Level) gruid.Range {
	var size gruid.Point
	grow := func(p gruid.Point) {
		size.X = max(size.X, p.X+1)
		size.Y = max(size.Y, p.Y+1)
	}
	for _, r := range lv.Rooms {
		grow(r.BottomRight)
	}
	for _, c := range lv.Corridors {
		for _, p := range c.Points {
			grow(p)
		}
	}
	return gruid.NewRange(0, 0, size.X, size.Y)
}

// Render draws lv in layers: room walls and floors, corridors, doors, then
// entities. The player is not part of a level; callers mark it with Set.
func Render(lv *level.Level) rl.Grid {
	size := Bounds(lv).Size()
	gd := rl.NewGrid(size.X, size.Y)

	for _, r := range lv.Rooms {
		box := r.Bounds()
		inner := r.Interior()
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				p := gruid.Point{X: x, Y: y}
				if p.In(inner) {
					gd.Set(p, Floor)
				} else {
					gd.Set(p, Wall)
				}
			}
		}
	}

	for _, c := range lv.Corridors {
		for _, p := range c.Cells() {
			gd.Set(p, Corridor)
		}
	}

	for _, r := range lv.Rooms {
		for _, d := range r.Doors {
			if d == nil {
				continue
			}
			cell := Door
			if p := lv.Passage(d.Passage); p != nil && !p.Open {
				cell = LockedDoor
			}
			gd.Set(d.Pos, cell)
		}
	}

	for _, r := range lv.Rooms {
		for _, e := range r.Entities {
			gd.Set(e.Pos, EntityCell(e.Kind))
		}
	}
	for _, e := range lv.Enemies {
		gd.Set(e.Pos, Enemy)
	}

	return gd
}

// EntityCell returns the cell an entity of kind k is drawn as.
func EntityCell(k entities.Kind) rl.Cell {
	switch {
	case k == entities.Player:
		return Player
	case k == entities.Portal:
		return Portal
	case k == entities.Key:
		return Key
	case k.IsEnemy():
		return Enemy
	default:
		return Item
	}
}

// Glyph returns the character a cell is printed as.
func Glyph(c rl.Cell) rune {
	switch c {
	case Wall:
		return '#'
	case Floor:
		return '.'
	case Corridor:
		return '+'
	case Door, LockedDoor:
		return '&'
	case Portal:
		return '!'
	case Key:
		return '>'
	case Item:
		return '*'
	case Enemy:
		return 'E'
	case Player:
		return '@'
	default:
		return ' '
	}
}

// KindGlyph returns the character an entity of kind k is printed as.
func KindGlyph(k entities.Kind) rune {
	switch k {
	case entities.Food:
		return '%'
	case entities.Treasure:
		return '*'
	case entities.Weapon:
		return '/'
	case entities.Scroll:
		return '~'
	case entities.Potion:
		return '?'
	case entities.Zombie:
		return 'Z'
	case entities.Vampire:
		return 'V'
	case entities.Ghost:
		return 'G'
	case entities.Ogre:
		return 'O'
	case entities.SnakeMagician:
		return 'S'
	case entities.Mimic:
		return 'M'
	default:
		return Glyph(EntityCell(k))
	}
}

// Walkable reports whether a cell can be stepped on. Locked doors count:
// opening them is a matter of keys, not of geometry.
func Walkable(c rl.Cell) bool {
	return c != Void && c != Wall
}

// corridorPath implements the paths.Pather interface over corridor and door
// cells only.
type corridorPath struct {
	gd  rl.Grid
	nbs paths.Neighbors
}

func (cp *corridorPath) Neighbors(p gruid.Point) []gruid.Point {
	return cp.nbs.Cardinal(p, func(q gruid.Point) bool {
		switch cp.gd.At(q) {
		case Corridor, Door, LockedDoor:
			return true
		}
		return false
	})
}

// CorridorWalkable reports whether the rendered corridor c connects its two
// doors through corridor cells alone.
func CorridorWalkable(gd rl.Grid, c *level.Corridor) bool {
	if len(c.Points) < 2 {
		return false
	}
	from, to := c.Points[0], c.Points[len(c.Points)-1]
	size := gd.Size()
	pr := paths.NewPathRange(gruid.NewRange(0, 0, size.X, size.Y))
	maxCost := len(c.Cells())
	pr.BreadthFirstMap(&corridorPath{gd: gd}, []gruid.Point{from}, maxCost)
	return pr.BreadthFirstMapAt(to) <= maxCost
}
