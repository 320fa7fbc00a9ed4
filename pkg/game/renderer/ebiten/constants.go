// Package ebiten provides an Ebiten-based level viewer.
package ebiten

import (
	"image/color"

	"rogue/pkg/engine/world"
)

// Color palette for the viewer
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall          = color.RGBA{255, 140, 0, 255}   // Orange
	colorFloor         = color.RGBA{0, 110, 120, 255}   // Dim cyan
	colorCorridor      = color.RGBA{140, 140, 160, 255} // Medium gray
	colorPortal        = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorItem          = color.RGBA{220, 170, 255, 255} // Bright purple
	colorEnemy         = color.RGBA{255, 80, 80, 255}   // Bright red
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Viewer defaults
const (
	defaultTileSize = 10
	minTileSize     = 4
	maxTileSize     = 32
	statusHeight    = 20
)

// doorColor returns the colour a door or key of level colour c is drawn in.
func doorColor(c world.Color) color.RGBA {
	switch c {
	case world.Red:
		return color.RGBA{255, 68, 68, 255}
	case world.Green:
		return color.RGBA{0, 200, 0, 255}
	case world.LightGreen:
		return color.RGBA{100, 255, 100, 255}
	case world.White:
		return color.RGBA{255, 255, 255, 255}
	case world.Yellow:
		return color.RGBA{255, 255, 0, 255}
	case world.Orange:
		return color.RGBA{255, 140, 0, 255}
	case world.Magenta:
		return color.RGBA{255, 68, 255, 255}
	case world.Blue:
		return color.RGBA{80, 110, 255, 255}
	case world.Cyan:
		return color.RGBA{0, 255, 255, 255}
	default:
		return colorText
	}
}
