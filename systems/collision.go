package systems

import (
	"time"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

// CollisionSystem tests the player box against every live entity each tick
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (cs *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update runs one detection pass and queues an event per hit
func (cs *CollisionSystem) Update(s *engine.Session, dt time.Duration) {
	for _, ev := range cs.Detect(s) {
		s.Events.Push(ev)
	}
}

// Detect finds every overlapping entity, removes all of them and returns one event each
// Boxes are rebuilt from current positions; removal happens after the scan
// Collectible events come first so points from the tick that ends the run still count
func (cs *CollisionSystem) Detect(s *engine.Session) []engine.Event {
	if !s.Progression.Running() {
		return nil
	}

	pb := s.Player.Bounds()
	var hits []engine.Event

	for _, c := range s.Registry.Collectibles() {
		if pb.Overlaps(c.Bounds()) {
			hits = append(hits, engine.Event{Type: engine.EventCollectibleHit, Entity: c.ID, Points: c.Points})
		}
	}
	for _, o := range s.Registry.Obstacles() {
		if pb.Overlaps(o.Bounds()) {
			hits = append(hits, engine.Event{Type: engine.EventObstacleHit, Entity: o.ID})
		}
	}

	for _, ev := range hits {
		s.Registry.Remove(ev.Entity)
	}
	return hits
}
