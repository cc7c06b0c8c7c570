package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intent types
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings; digits are handled separately as IntentSelectIndex
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentSelectPrev,
			tcell.KeyDown:   IntentSelectNext,
			tcell.KeyLeft:   IntentDecrement,
			tcell.KeyRight:  IntentIncrement,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'k': IntentSelectPrev,
			'j': IntentSelectNext,
			'h': IntentDecrement,
			'-': IntentDecrement,
			'l': IntentIncrement,
			'+': IntentIncrement,
			'=': IntentIncrement,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return Intent{Type: kt.SpecialKeys[ev.Key()]}
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return Intent{Type: IntentSelectIndex, Index: int(r - '1')}
	}
	return Intent{Type: kt.Runes[r]}
}
