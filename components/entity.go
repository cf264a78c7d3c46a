package components

import (
	"github.com/lixenwraith/reef-dash/vmath"
)

// PlayerComponent is the single player-controlled swimmer
type PlayerComponent struct {
	Pos     vmath.Vec2
	Facing  float64    // Radians, 0 = forward (-Z), smoothed toward Heading
	Heading float64    // Heading of the most recent nonzero movement
	Half    vmath.Vec2 // Box half extents
}

// Bounds returns the player's world box at its current position
func (p *PlayerComponent) Bounds() vmath.AABB {
	return vmath.BoxAround(p.Pos, p.Half)
}

// ObstacleComponent is a hazard scrolling toward the player
type ObstacleComponent struct {
	Category ObstacleCategory
	Pos      vmath.Vec2
	Speed    float64 // Base forward speed, world units per second
	Half     vmath.Vec2
	Visual   Visual
}

// Bounds recomputes the world box from the current position
func (o *ObstacleComponent) Bounds() vmath.AABB {
	return vmath.BoxAround(o.Pos, o.Half)
}

// CollectibleComponent is a pickup that awards points on contact
type CollectibleComponent struct {
	Category CollectibleCategory
	Pos      vmath.Vec2
	Speed    float64 // Base forward speed already scaled by the category multiplier
	Half     vmath.Vec2
	Points   int
	Phase    float64 // Idle wiggle phase in [0, 2*Pi), cosmetic
	Visual   Visual
}

// Bounds recomputes the world box from the current position, phase is ignored
func (c *CollectibleComponent) Bounds() vmath.AABB {
	return vmath.BoxAround(c.Pos, c.Half)
}
