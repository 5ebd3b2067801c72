package termhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-dpad"
)

func TestDefaultKeyMap_Lookup(t *testing.T) {
	type tc struct {
		ev         *tcell.EventKey
		wantFound  bool
		wantAction Action
		wantInput  dpad.Input
	}

	activate := dpad.Input{Kind: dpad.InputActivate}

	tests := map[string]tc{
		"up arrow": {
			ev:         key(tcell.KeyUp),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  dpad.MoveInput(dpad.Up),
		},
		"down arrow": {
			ev:         key(tcell.KeyDown),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  dpad.MoveInput(dpad.Down),
		},
		"h": {
			ev:         runeKey('h'),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  dpad.MoveInput(dpad.Left),
		},
		"j": {
			ev:         runeKey('j'),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  dpad.MoveInput(dpad.Down),
		},
		"enter": {
			ev:         key(tcell.KeyEnter),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  activate,
		},
		"space": {
			ev:         runeKey(' '),
			wantFound:  true,
			wantAction: ActionDispatch,
			wantInput:  activate,
		},
		"tab": {
			ev:         key(tcell.KeyTab),
			wantFound:  true,
			wantAction: ActionIgnore,
		},
		"ctrl-c": {
			ev:         tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			wantFound:  true,
			wantAction: ActionQuit,
		},
		"q": {
			ev:         runeKey('q'),
			wantFound:  true,
			wantAction: ActionQuit,
		},
		"unbound rune": {
			ev: runeKey('z'),
		},
		"unbound key": {
			ev: key(tcell.KeyF1),
		},
	}

	m := DefaultKeyMap()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, ok := m.Lookup(tt.ev)
			assert.Equal(t, tt.wantFound, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantAction, b.Action)
			if tt.wantAction == ActionDispatch {
				assert.Equal(t, tt.wantInput, b.Input)
			}
		})
	}
}

func TestKeyPattern_Matches(t *testing.T) {
	type tc struct {
		pattern KeyPattern
		ev      *tcell.EventKey
		want    bool
	}

	tests := map[string]tc{
		"rune matches": {
			pattern: KeyPattern{Rune: 'x'},
			ev:      runeKey('x'),
			want:    true,
		},
		"rune differs": {
			pattern: KeyPattern{Rune: 'x'},
			ev:      runeKey('y'),
		},
		"rune pattern ignores special keys": {
			pattern: KeyPattern{Rune: 'x'},
			ev:      key(tcell.KeyUp),
		},
		"key matches": {
			pattern: KeyPattern{Key: tcell.KeyUp},
			ev:      key(tcell.KeyUp),
			want:    true,
		},
		"modifier required": {
			pattern: KeyPattern{Key: tcell.KeyUp, Mod: tcell.ModShift},
			ev:      key(tcell.KeyUp),
		},
		"modifier present": {
			pattern: KeyPattern{Key: tcell.KeyUp, Mod: tcell.ModShift},
			ev:      tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift),
			want:    true,
		},
		"empty pattern": {
			pattern: KeyPattern{},
			ev:      key(tcell.KeyUp),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.ev))
		})
	}
}

func TestKeyMap_FirstMatchWins(t *testing.T) {
	m := KeyMap{
		OnRune('x', dpad.MoveInput(dpad.Up)),
		QuitOnRune('x'),
	}
	b, ok := m.Lookup(runeKey('x'))
	assert.True(t, ok)
	assert.Equal(t, ActionDispatch, b.Action)
}

func TestFitLabel(t *testing.T) {
	type tc struct {
		label string
		w, h  int
		wrap  bool
		want  []string
	}

	tests := map[string]tc{
		"fits": {
			label: "Play",
			w:     8,
			h:     1,
			want:  []string{"Play"},
		},
		"truncated": {
			label: "Settings",
			w:     5,
			h:     1,
			want:  []string{"Sett…"},
		},
		"wrap disabled keeps one line": {
			label: "Open Settings",
			w:     6,
			h:     3,
			want:  []string{"Open …"},
		},
		"wrapped": {
			label: "Open Settings",
			w:     8,
			h:     3,
			wrap:  true,
			want:  []string{"Open", "Settings"},
		},
		"wrapped and cut": {
			label: "one two three",
			w:     5,
			h:     2,
			wrap:  true,
			want:  []string{"one", "two…"},
		},
		"wide runes": {
			label: "日本語",
			w:     4,
			h:     1,
			want:  []string{"日…"},
		},
		"empty": {
			label: "",
			w:     4,
			h:     1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitLabel(tt.label, tt.w, tt.h, tt.wrap))
		})
	}
}
