package engine

import (
	"testing"

	"github.com/lixenwraith/reef-dash/components"
)

func TestSessionStartIdempotent(t *testing.T) {
	s := NewSession(DefaultTuning(), nil, 1)
	s.Registry.SpawnObstacle(components.ObstacleRock, 0)
	s.Player.Pos.X = 5

	s.Start()
	firstState := s.Progression.State()
	firstPlayer := *s.Player
	firstLen := s.Registry.Len()

	s.Start()
	if s.Progression.State() != firstState {
		t.Errorf("Expected identical state, got %+v then %+v", firstState, s.Progression.State())
	}
	if *s.Player != firstPlayer {
		t.Errorf("Expected identical player, got %+v then %+v", firstPlayer, *s.Player)
	}
	if firstLen != 0 || s.Registry.Len() != 0 {
		t.Error("Expected empty registry after start")
	}
	if s.Player.Pos != s.Tuning.Field.PlayerStart() {
		t.Errorf("Expected player at start position, got %+v", s.Player.Pos)
	}

	// Only the latest start event is pending
	evs := s.Events.Consume()
	if len(evs) != 1 || evs[0].Type != EventSessionStarted {
		t.Errorf("Expected one session started event, got %+v", evs)
	}
}

func TestSessionFrameSnapshot(t *testing.T) {
	s := NewSession(DefaultTuning(), nil, 1)
	s.Start()
	s.Registry.SpawnObstacle(components.ObstacleRock, 0)
	s.Registry.SpawnCollectible(components.CollectibleFish, 0, 0)

	f := s.Frame()
	if len(f.Obstacles) != 1 || len(f.Collectibles) != 1 {
		t.Errorf("Expected one of each entity, got %d/%d", len(f.Obstacles), len(f.Collectibles))
	}
	if f.Phase != PhaseRunning || f.HUD.Lives != 3 {
		t.Errorf("Unexpected frame state %+v", f.HUD)
	}
}

func TestDirectionsVector(t *testing.T) {
	tests := []struct {
		name string
		d    Directions
		x, z float64
	}{
		{"None", Directions{}, 0, 0},
		{"Up", Directions{Up: true}, 0, -1},
		{"Diagonal", Directions{Down: true, Right: true}, 1, 1},
		{"Opposed", Directions{Left: true, Right: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.d.Vector()
			if v.X != tt.x || v.Z != tt.z {
				t.Errorf("Expected (%f,%f), got %+v", tt.x, tt.z, v)
			}
		})
	}
}
