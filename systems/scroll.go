package systems

import (
	"time"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

// ScrollSystem advances every entity toward the player and culls those behind it
type ScrollSystem struct {
	culled int
}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (ss *ScrollSystem) Priority() int {
	return constants.PriorityScroll
}

// Update scrolls by the current difficulty multiplier and removes entities past the despawn depth
func (ss *ScrollSystem) Update(s *engine.Session, dt time.Duration) {
	s.Registry.Advance(dt, s.Progression.ScrollMultiplier())
	ss.culled += s.Registry.RemoveBehind(s.Tuning.Field.DespawnZ)
}

// Culled returns the number of entities removed for scrolling out of the field
func (ss *ScrollSystem) Culled() int {
	return ss.culled
}
