package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into Intents
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine in menu mode with default bindings
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeMenu,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a terminal event and returns an Intent, nil when the event means nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch m.mode {
	case ModeNameEntry:
		return m.processNameEntry(ev)
	default:
		return m.processPlay(ev)
	}
}

func (m *Machine) processPlay(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return &Intent{Type: entry.IntentType, Direction: entry.Direction}
		}
		return nil
	}

	// Ctrl+Q arrives as a rune with the Ctrl modifier on some terminals
	if ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'q' {
		return &Intent{Type: IntentQuit}
	}

	r := unicode.ToLower(ev.Rune())
	if m.mode == ModeMenu {
		if entry, ok := m.keyTable.MenuRunes[r]; ok {
			return &Intent{Type: entry.IntentType, Direction: entry.Direction}
		}
	}
	if entry, ok := m.keyTable.PlayRunes[r]; ok {
		return &Intent{Type: entry.IntentType, Direction: entry.Direction}
	}
	return nil
}

func (m *Machine) processNameEntry(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	// Skip saving and play again
	case tcell.KeyTab, tcell.KeyCtrlR:
		return &Intent{Type: IntentRestart}
	case tcell.KeyEnter:
		return &Intent{Type: IntentTextConfirm}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return &Intent{Type: IntentTextBackspace}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsPrint(r) {
			return &Intent{Type: IntentTextChar, Char: r}
		}
	}
	return nil
}
