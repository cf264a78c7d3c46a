package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/reef-dash/components"
)

// Session aggregates everything one run of the game touches
// Created by the session manager and passed to every system; no package-level state
type Session struct {
	ID          uuid.UUID
	Tuning      Tuning
	Registry    *Registry
	Progression *Progression
	Player      *components.PlayerComponent
	Input       InputSource
	Rand        *rand.Rand
	Events      *EventQueue
}

// NewSession builds an Idle session; input may be nil for headless use
func NewSession(t Tuning, input InputSource, seed int64) *Session {
	if input == nil {
		input = InputFunc(func() Directions { return Directions{} })
	}
	s := &Session{
		ID:          uuid.New(),
		Tuning:      t,
		Registry:    NewRegistry(t),
		Progression: NewProgression(t),
		Player:      &components.PlayerComponent{},
		Input:       input,
		Rand:        rand.New(rand.NewSource(seed)),
		Events:      NewEventQueue(),
	}
	s.resetPlayer()
	return s
}

func (s *Session) resetPlayer() {
	*s.Player = components.PlayerComponent{
		Pos:  s.Tuning.Field.PlayerStart(),
		Half: s.Tuning.PlayerHalf,
	}
}

// Start resets entities, player and game state and enters Running
// Calling it twice in a row yields the same fresh state
func (s *Session) Start() {
	s.Registry.Clear()
	s.resetPlayer()
	s.Events.Consume()
	s.Progression.Start()
	s.Events.Push(Event{Type: EventSessionStarted})
}

// HUD returns the HUD view of the current state
func (s *Session) HUD() HUDState {
	st := s.Progression.State()
	return HUDState{
		Score:   st.Score,
		Lives:   st.Lives,
		Level:   st.Level,
		Elapsed: st.Elapsed,
	}
}

// Frame builds the render snapshot of the current state
func (s *Session) Frame() *Frame {
	return &Frame{
		Player: PlayerView{
			Pos:    s.Player.Pos,
			Facing: s.Player.Facing,
			Half:   s.Player.Half,
		},
		Obstacles:    s.Registry.Obstacles(),
		Collectibles: s.Registry.Collectibles(),
		HUD:          s.HUD(),
		Phase:        s.Progression.State().Phase,
	}
}
