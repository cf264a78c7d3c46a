package render

import (
	"math"

	"github.com/lixenwraith/reef-dash/components"
	"github.com/lixenwraith/reef-dash/vmath"
)

var obstacleGlyphs = map[components.ObstacleCategory]rune{
	components.ObstacleRock:   '█',
	components.ObstacleLog:    '═',
	components.ObstacleBoat:   '▲',
	components.ObstacleIsland: '▓',
	components.ObstacleShark:  '◆',
}

var collectibleGlyphs = map[components.CollectibleCategory]rune{
	components.CollectibleFish:      '≈',
	components.CollectibleStarfish:  '*',
	components.CollectibleJellyfish: 'Ω',
	components.CollectibleClam:      '◒',
	components.CollectibleGoldfish:  '$',
}

// spinFrames cycle for SpinSlowly
var spinFrames = []rune{'+', '×', '*', '×'}

// ObstacleGlyph returns the fill rune for c
func ObstacleGlyph(c components.ObstacleCategory) rune {
	if g, ok := obstacleGlyphs[c]; ok {
		return g
	}
	return '#'
}

// CollectibleGlyph returns the base rune for c
func CollectibleGlyph(c components.CollectibleCategory) rune {
	if g, ok := collectibleGlyphs[c]; ok {
		return g
	}
	return 'o'
}

// PlayerGlyph picks an arrow for the facing angle, 0 = forward
func PlayerGlyph(facing float64) rune {
	arrows := []rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}
	octant := int(math.Round(vmath.WrapPhase(facing)/(math.Pi/4))) % len(arrows)
	return arrows[octant]
}

// visualPose is the cosmetic adjustment an animation applies for one frame
type visualPose struct {
	offset   vmath.Vec2 // World-space draw offset
	glyph    rune       // Zero keeps the base glyph
	tail     int        // Rows of tentacles drawn behind the entity
	tailRune rune
}

// poseFor resolves a Visual at phase; phase drives every animation
func poseFor(v components.Visual, phase float64) visualPose {
	switch v := v.(type) {
	case components.BobAndSway:
		return visualPose{offset: vmath.Vec2{X: v.Sway * math.Sin(phase)}}
	case components.DriftWithTentacles:
		tail := '|'
		if math.Sin(phase) > 0 {
			tail = '¦'
		}
		return visualPose{tail: v.Length, tailRune: tail}
	case components.SpinSlowly:
		frames := v.Frames
		if frames <= 0 || frames > len(spinFrames) {
			frames = len(spinFrames)
		}
		idx := int(vmath.WrapPhase(phase)/(2*math.Pi)*float64(frames)) % frames
		return visualPose{glyph: spinFrames[idx]}
	}
	return visualPose{}
}
