package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-dash/components"
)

// Palette
var (
	RgbWaterDeep    = tcell.NewRGBColor(8, 32, 64)    // Far water
	RgbWaterShallow = tcell.NewRGBColor(16, 72, 112)  // Near water
	RgbWaterRipple  = tcell.NewRGBColor(60, 120, 170) // Ripple marks

	RgbPlayer     = tcell.NewRGBColor(255, 165, 0) // Orange swimmer

	RgbHUD        = tcell.NewRGBColor(255, 255, 255)
	RgbHUDLabel   = tcell.NewRGBColor(140, 190, 255)
	RgbHUDLives   = tcell.NewRGBColor(255, 80, 80)
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180)
	RgbOverlayBg  = tcell.NewRGBColor(10, 10, 30)
	RgbOverlayFg  = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayHot = tcell.NewRGBColor(255, 255, 0)
)

// obstacleColors is indexed by category
var obstacleColors = map[components.ObstacleCategory]tcell.Color{
	components.ObstacleRock:   tcell.NewRGBColor(130, 130, 130),
	components.ObstacleLog:    tcell.NewRGBColor(139, 90, 43),
	components.ObstacleBoat:   tcell.NewRGBColor(230, 230, 230),
	components.ObstacleIsland: tcell.NewRGBColor(60, 160, 60),
	components.ObstacleShark:  tcell.NewRGBColor(110, 130, 150),
}

var collectibleColors = map[components.CollectibleCategory]tcell.Color{
	components.CollectibleFish:      tcell.NewRGBColor(100, 200, 255),
	components.CollectibleStarfish:  tcell.NewRGBColor(255, 120, 80),
	components.CollectibleJellyfish: tcell.NewRGBColor(220, 130, 255),
	components.CollectibleClam:      tcell.NewRGBColor(240, 220, 180),
	components.CollectibleGoldfish:  tcell.NewRGBColor(255, 215, 0),
}

// ObstacleColor returns the foreground for c, white when unknown
func ObstacleColor(c components.ObstacleCategory) tcell.Color {
	if col, ok := obstacleColors[c]; ok {
		return col
	}
	return tcell.ColorWhite
}

// CollectibleColor returns the foreground for c, white when unknown
func CollectibleColor(c components.CollectibleCategory) tcell.Color {
	if col, ok := collectibleColors[c]; ok {
		return col
	}
	return tcell.ColorWhite
}
