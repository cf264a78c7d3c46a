package input

import (
	"time"

	"github.com/lixenwraith/reef-dash/engine"
)

// KeyState tracks which movement directions count as held
// Terminals report presses and auto-repeats but no releases, so a direction
// stays held for the hold window after its latest press
type KeyState struct {
	clock  engine.TimeProvider
	window time.Duration
	last   [DirRight + 1]time.Time
}

// NewKeyState creates a key state reading time from clock
func NewKeyState(clock engine.TimeProvider, window time.Duration) *KeyState {
	return &KeyState{clock: clock, window: window}
}

// Press records a press of d; the opposite direction is released
func (k *KeyState) Press(d Direction) {
	if d == DirNone {
		return
	}
	k.last[d] = k.clock.Now()
	k.last[d.opposite()] = time.Time{}
}

// Apply records movement intents and ignores everything else
func (k *KeyState) Apply(in *Intent) bool {
	if in == nil || in.Type != IntentMove {
		return false
	}
	k.Press(in.Direction)
	return true
}

// Reset releases all directions
func (k *KeyState) Reset() {
	k.last = [DirRight + 1]time.Time{}
}

// Directions implements engine.InputSource
func (k *KeyState) Directions() engine.Directions {
	var dirs engine.Directions
	now := k.clock.Now()
	for d := DirUp; d <= DirRight; d++ {
		t := k.last[d]
		if t.IsZero() {
			continue
		}
		if now.Sub(t) < k.window {
			d.apply(&dirs)
		}
	}
	return dirs
}
