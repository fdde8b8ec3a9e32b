package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/firework/constant"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, digits are handled before this table
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			constant.QuitRune:         IntentQuit,
			constant.StatusToggleRune: IntentToggleStatus,
		},
	}
}

// Translate maps a terminal event to an intent, unknown events give None
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return None
	}

	if key.Key() != tcell.KeyRune {
		if it, ok := kt.SpecialKeys[key.Key()]; ok {
			return Intent{Type: it}
		}
		return None
	}

	r := key.Rune()
	if r >= '1' && r <= '9' {
		return Intent{Type: IntentSpawn, Digit: int(r - '0')}
	}
	if it, ok := kt.Runes[r]; ok {
		return Intent{Type: it}
	}
	return None
}
