package input

import "github.com/lixenwraith/reef-dash/constants"

// NameBuffer collects the player name typed on the game-over screen
type NameBuffer struct {
	runes []rune
}

func NewNameBuffer() *NameBuffer {
	return &NameBuffer{runes: make([]rune, 0, constants.MaxNameLength)}
}

// Insert appends r unless the buffer is full
func (b *NameBuffer) Insert(r rune) bool {
	if len(b.runes) >= constants.MaxNameLength {
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// Backspace removes the last rune
func (b *NameBuffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Apply edits the buffer from a text intent and reports whether it was one
func (b *NameBuffer) Apply(in *Intent) bool {
	if in == nil {
		return false
	}
	switch in.Type {
	case IntentTextChar:
		b.Insert(in.Char)
	case IntentTextBackspace:
		b.Backspace()
	default:
		return false
	}
	return true
}

func (b *NameBuffer) Reset() {
	b.runes = b.runes[:0]
}

func (b *NameBuffer) Len() int {
	return len(b.runes)
}

func (b *NameBuffer) String() string {
	return string(b.runes)
}
