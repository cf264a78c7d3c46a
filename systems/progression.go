package systems

import (
	"time"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

// ProgressionSystem advances run time and applies collision events to the session's Progression
type ProgressionSystem struct {
	session *engine.Session
}

func NewProgressionSystem(s *engine.Session) *ProgressionSystem {
	return &ProgressionSystem{session: s}
}

func (ps *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

// Update ticks elapsed time and raises one LevelUp event per level gained
func (ps *ProgressionSystem) Update(s *engine.Session, dt time.Duration) {
	ups := s.Progression.Tick(dt)
	level := s.Progression.Level()
	for i := ups - 1; i >= 0; i-- {
		s.Events.Push(engine.Event{Type: engine.EventLevelUp, Level: level - i})
	}
}

// EventTypes implements engine.EventHandler
func (ps *ProgressionSystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventObstacleHit, engine.EventCollectibleHit}
}

// HandleEvent applies a collision to lives or score; losing the last life raises GameOver
func (ps *ProgressionSystem) HandleEvent(ev engine.Event) {
	p := ps.session.Progression
	switch ev.Type {
	case engine.EventObstacleHit:
		if p.OnObstacleHit() {
			ps.session.Events.Push(engine.Event{Type: engine.EventGameOver, Score: p.State().Score})
		}
	case engine.EventCollectibleHit:
		p.OnCollectibleHit(ev.Points)
	}
}
