package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// KeyTable maps terminal keys to game actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Action

	// Printable bindings, case-sensitive
	Runes map[rune]engine.Action
}

// DefaultKeyTable returns WASD, vi hjkl and arrow bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Action{
			tcell.KeyUp:     engine.ActionUp,
			tcell.KeyDown:   engine.ActionDown,
			tcell.KeyLeft:   engine.ActionLeft,
			tcell.KeyRight:  engine.ActionRight,
			tcell.KeyEscape: engine.ActionQuit,
			tcell.KeyCtrlC:  engine.ActionQuit,
		},
		Runes: map[rune]engine.Action{
			'w': engine.ActionUp,
			'k': engine.ActionUp,
			's': engine.ActionDown,
			'j': engine.ActionDown,
			'a': engine.ActionLeft,
			'h': engine.ActionLeft,
			'd': engine.ActionRight,
			'l': engine.ActionRight,
			'q': engine.ActionQuit,
			'Q': engine.ActionQuit,
			'r': engine.ActionRestart,
			'R': engine.ActionRestart,
		},
	}
}

// Lookup decodes a key event; unbound keys yield ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Action {
	if ev.Key() == tcell.KeyRune {
		// Some terminals report Ctrl+C as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if ev.Rune() == 'c' || ev.Rune() == 'C' {
				return engine.ActionQuit
			}
			return engine.ActionNone
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
