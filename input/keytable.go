package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-chase/geom"
)

// KeyTable maps raw key events to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func move(d geom.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

var (
	confirm = Intent{Type: IntentConfirm}
	quit    = Intent{Type: IntentQuit}
)

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     move(geom.Up),
			tcell.KeyDown:   move(geom.Down),
			tcell.KeyLeft:   move(geom.Left),
			tcell.KeyRight:  move(geom.Right),
			tcell.KeyEnter:  confirm,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
			tcell.KeyCtrlQ:  quit,
		},

		Runes: map[rune]Intent{
			// vi motions
			'h': move(geom.Left),
			'j': move(geom.Down),
			'k': move(geom.Up),
			'l': move(geom.Right),
			// gamer motions
			'w': move(geom.Up),
			'a': move(geom.Left),
			's': move(geom.Down),
			'd': move(geom.Right),

			'y': confirm,
			' ': confirm,
			'q': quit,
			'n': quit,
		},
	}
}

// Lookup translates a key event; unbound keys yield IntentNone
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
