package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
	"github.com/lixenwraith/reef-dash/vmath"
)

// PlayerSystem moves the player from held directions and clamps it to the field
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (ps *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update applies PlayerSpeed*dt per held direction, then clamps and turns the player
func (ps *PlayerSystem) Update(s *engine.Session, dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	p := s.Player

	dir := s.Input.Directions().Vector()
	if !vmath.V2IsZero(dir) {
		delta := vmath.V2Scale(dir, s.Tuning.PlayerSpeed*secs)
		area := s.Tuning.Field.PlayerArea(p.Half)
		p.Pos = area.ClampPoint(vmath.V2Add(p.Pos, delta))
		p.Heading = vmath.Heading(dir)
	}

	// Facing keeps converging after input stops
	blend := 1 - math.Exp(-s.Tuning.TurnRate*secs)
	p.Facing = vmath.LerpAngle(p.Facing, p.Heading, blend)
}
