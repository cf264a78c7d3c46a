package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  Direction
}

// KeyTable maps keys to intents for play mode
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Play mode rune bindings
	PlayRunes map[rune]KeyEntry

	// Menu mode overrides, falling back to PlayRunes
	MenuRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentStart},
			tcell.KeyUp:     {IntentType: IntentMove, Direction: DirUp},
			tcell.KeyDown:   {IntentType: IntentMove, Direction: DirDown},
			tcell.KeyLeft:   {IntentType: IntentMove, Direction: DirLeft},
			tcell.KeyRight:  {IntentType: IntentMove, Direction: DirRight},
		},

		PlayRunes: map[rune]KeyEntry{
			'w': {IntentType: IntentMove, Direction: DirUp},
			's': {IntentType: IntentMove, Direction: DirDown},
			'a': {IntentType: IntentMove, Direction: DirLeft},
			'd': {IntentType: IntentMove, Direction: DirRight},
			'r': {IntentType: IntentRestart},
			'p': {IntentType: IntentPause},
			' ': {IntentType: IntentPause},
			'm': {IntentType: IntentToggleMute},
		},

		MenuRunes: map[rune]KeyEntry{
			's': {IntentType: IntentStart},
		},
	}
}
