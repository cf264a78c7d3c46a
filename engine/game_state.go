package engine

import (
	"fmt"
	"time"
)

// GamePhase is the session state machine position
type GamePhase int

const (
	PhaseIdle GamePhase = iota
	PhaseRunning
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState is the scoring, lives and level record of one run
// Only Progression mutates it; everything else reads copies
type GameState struct {
	Score   int
	Lives   int
	Elapsed time.Duration
	Ticks   uint64
	Level   int
	Phase   GamePhase
}

// Running reports whether the simulation should advance
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}

// GameOver reports whether the run ended by losing every life
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// FormatElapsed renders d as minutes:seconds, minutes unbounded
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
