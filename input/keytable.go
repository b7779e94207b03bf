package input

import "github.com/gdamore/tcell/v2"

// Keymap maps terminal keys to actions
type Keymap struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeymap returns the default bindings
// Arrows or WASD steer, space fires, Enter starts, r restarts, q/Esc/Ctrl+C quits
func DefaultKeymap() *Keymap {
	return &Keymap{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'w': ActionThrust,
			' ': ActionFire,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Resolve returns the action bound to a key event
func (k *Keymap) Resolve(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return k.Runes[r]
	}
	return k.SpecialKeys[ev.Key()]
}
