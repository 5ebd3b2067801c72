package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-dpad"
)

// Action says what the host does with a matched key.
type Action uint8

const (
	// ActionDispatch forwards the binding's Input to the controller.
	ActionDispatch Action = iota
	// ActionQuit ends the event loop.
	ActionQuit
	// ActionIgnore swallows the key.
	ActionIgnore
)

// KeyMap is an ordered list of key bindings. The first matching binding
// wins.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with an action.
type KeyBinding struct {
	Pattern KeyPattern
	Action  Action
	Input   dpad.Input // used by ActionDispatch
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key  tcell.Key     // Specific key (KeyUp, KeyEnter, etc.), or 0
	Rune rune          // Specific rune, or 0
	Mod  tcell.ModMask // Required modifiers (when non-zero, event must have exactly these mods)
}

// Matches reports whether ev matches the pattern.
func (p KeyPattern) Matches(ev *tcell.EventKey) bool {
	if p.Mod != 0 && ev.Modifiers() != p.Mod {
		return false
	}
	if p.Rune != 0 {
		return ev.Key() == tcell.KeyRune && ev.Rune() == p.Rune
	}
	return p.Key != 0 && ev.Key() == p.Key
}

// OnKey binds a special key to a controller input.
func OnKey(key tcell.Key, in dpad.Input) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Action: ActionDispatch, Input: in}
}

// OnRune binds a printable character to a controller input.
func OnRune(r rune, in dpad.Input) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Action: ActionDispatch, Input: in}
}

// QuitOnKey binds a special key to ActionQuit.
func QuitOnKey(key tcell.Key) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Action: ActionQuit}
}

// QuitOnRune binds a printable character to ActionQuit.
func QuitOnRune(r rune) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Action: ActionQuit}
}

// IgnoreKey swallows a special key so it never reaches the controller.
func IgnoreKey(key tcell.Key) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Action: ActionIgnore}
}

// Lookup returns the first binding matching ev.
func (m KeyMap) Lookup(ev *tcell.EventKey) (KeyBinding, bool) {
	for _, b := range m {
		if b.Pattern.Matches(ev) {
			return b, true
		}
	}
	return KeyBinding{}, false
}

// DefaultKeyMap binds the arrow keys and hjkl to moves, Enter and Space to
// activation, and q, Esc and Ctrl-C to quit. Tab is ignored; focus only
// moves spatially.
func DefaultKeyMap() KeyMap {
	activate := dpad.Input{Kind: dpad.InputActivate}
	return KeyMap{
		OnKey(tcell.KeyUp, dpad.MoveInput(dpad.Up)),
		OnKey(tcell.KeyDown, dpad.MoveInput(dpad.Down)),
		OnKey(tcell.KeyLeft, dpad.MoveInput(dpad.Left)),
		OnKey(tcell.KeyRight, dpad.MoveInput(dpad.Right)),
		OnRune('k', dpad.MoveInput(dpad.Up)),
		OnRune('j', dpad.MoveInput(dpad.Down)),
		OnRune('h', dpad.MoveInput(dpad.Left)),
		OnRune('l', dpad.MoveInput(dpad.Right)),
		OnKey(tcell.KeyEnter, activate),
		OnRune(' ', activate),
		IgnoreKey(tcell.KeyTab),
		IgnoreKey(tcell.KeyBacktab),
		QuitOnRune('q'),
		QuitOnKey(tcell.KeyEscape),
		QuitOnKey(tcell.KeyCtrlC),
	}
}
