package ebiten

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
	"rogue/pkg/game/level"
	"rogue/pkg/game/raster"
)

// getCellRenderOptions returns rendering options for a rendered cell.
func getCellRenderOptions(c rl.Cell) CellRenderOptions {
	switch c {
	case raster.Wall:
		return CellRenderOptions{Color: colorWall, HasBackground: true}
	case raster.Floor:
		return CellRenderOptions{Color: colorFloor, HasBackground: true}
	case raster.Corridor:
		return CellRenderOptions{Color: colorCorridor, HasBackground: true}
	case raster.Portal:
		return CellRenderOptions{Color: colorPortal}
	case raster.Item:
		return CellRenderOptions{Color: colorItem}
	case raster.Enemy:
		return CellRenderOptions{Color: colorEnemy}
	case raster.Player:
		return CellRenderOptions{Color: colorPlayer}
	default:
		return CellRenderOptions{Color: colorMapBackground}
	}
}

// entityRenderOptions returns rendering options for an entity; keys take
// their own colour.
func entityRenderOptions(e *entities.Entity) CellRenderOptions {
	if e.Kind == entities.Key {
		return CellRenderOptions{Color: doorColor(e.Color)}
	}
	return getCellRenderOptions(raster.EntityCell(e.Kind))
}

// tiles renders lv into row-major render options. Doors take the colour of
// their passage.
func tiles(lv *level.Level, player gruid.Point) (gruid.Point, []CellRenderOptions) {
	gd := raster.Render(lv)
	size := gd.Size()
	out := make([]CellRenderOptions, size.X*size.Y)
	at := func(p gruid.Point) *CellRenderOptions {
		return &out[p.Y*size.X+p.X]
	}

	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := gruid.Point{X: x, Y: y}
			*at(p) = getCellRenderOptions(gd.At(p))
		}
	}

	for _, r := range lv.Rooms {
		for _, d := range r.Doors {
			if d == nil {
				continue
			}
			c := world.Unlocked
			if p := lv.Passage(d.Passage); p != nil {
				c = p.Color
			}
			*at(d.Pos) = CellRenderOptions{Color: doorColor(c), HasBackground: true}
		}
		for _, e := range r.Entities {
			*at(e.Pos) = entityRenderOptions(e)
		}
	}
	for _, e := range lv.Enemies {
		*at(e.Pos) = entityRenderOptions(e)
	}
	if player.In(gruid.NewRange(0, 0, size.X, size.Y)) {
		*at(player) = getCellRenderOptions(raster.Player)
	}

	return size, out
}
