package input

import "github.com/lixenwraith/reef-dash/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Session commands
	IntentStart   // Enter, s
	IntentRestart // r
	IntentPause   // p, Space

	// Held movement
	IntentMove // Arrows, WASD

	// Name entry on the game-over screen
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter
)

// Direction is one of the four held movement directions
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Intent is a parsed input event
type Intent struct {
	Type      IntentType
	Direction Direction // IntentMove
	Char      rune      // IntentTextChar
}

// apply sets d in dirs
func (d Direction) apply(dirs *engine.Directions) {
	switch d {
	case DirUp:
		dirs.Up = true
	case DirDown:
		dirs.Down = true
	case DirLeft:
		dirs.Left = true
	case DirRight:
		dirs.Right = true
	}
}

// opposite returns the direction that cancels d
func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}
