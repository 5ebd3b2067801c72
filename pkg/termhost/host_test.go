package termhost

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/pkg/layoutfile"
)

const row = `
name: row
focus: a
default_nav_index: 0
regions:
  - id: a
    label: Alpha
    x: 0
    y: 0
    width: 10
    height: 3
  - id: b
    label: Beta
    x: 12
    y: 0
    width: 10
    height: 3
  - id: c
    label: Hidden
    x: 24
    y: 0
    width: 10
    height: 3
    hidden: true
`

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newHost(t *testing.T, doc string, opts ...Option) (*Host, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t, 40, 8)
	h, err := New(s, dpad.MustNewController(), opts...)
	require.NoError(t, err)

	l, err := layoutfile.Parse([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, h.Load(l))
	return h, s
}

// capture returns the screen contents, one string per row.
func capture(s tcell.Screen) []string {
	w, h := s.Size()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, _, _, _ := s.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines[y] = line.String()
	}
	return lines
}

// nextInterrupt polls s until an interrupt arrives, skipping resize events
// the screen may have queued on its own.
func nextInterrupt(t *testing.T, s tcell.Screen) tcell.Event {
	t.Helper()
	for i := 0; i < 10; i++ {
		ev := s.PollEvent()
		require.NotNil(t, ev)
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return ev
		}
	}
	t.Fatal("no interrupt event")
	return nil
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNew_Errors(t *testing.T) {
	s := newScreen(t, 10, 5)

	_, err := New(nil, dpad.MustNewController())
	assert.ErrorIs(t, err, ErrNilScreen)

	_, err = New(s, nil)
	assert.ErrorIs(t, err, ErrNilController)

	_, err = New(s, dpad.MustNewController(), WithKeyMap(nil))
	assert.Error(t, err)

	_, err = New(s, dpad.MustNewController(), WithOffset(-1, 0))
	assert.Error(t, err)
}

func TestHost_LoadFocusesInitialRegion(t *testing.T) {
	h, _ := newHost(t, row)

	idx, r := h.Controller().Focused()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "a", r.ID())
	assert.Equal(t, "row: 3 regions", h.Status())
}

func TestHost_HandleEvent(t *testing.T) {
	type tc struct {
		events    []tcell.Event
		wantFocus string
		wantQuit  bool
	}

	tests := map[string]tc{
		"arrow moves right": {
			events:    []tcell.Event{key(tcell.KeyRight)},
			wantFocus: "b",
		},
		"l moves right": {
			events:    []tcell.Event{runeKey('l')},
			wantFocus: "b",
		},
		"bounce at edge": {
			events:    []tcell.Event{key(tcell.KeyLeft), key(tcell.KeyUp)},
			wantFocus: "a",
		},
		"hidden region skipped": {
			events:    []tcell.Event{key(tcell.KeyRight), key(tcell.KeyRight)},
			wantFocus: "b",
		},
		"tab ignored": {
			events:    []tcell.Event{key(tcell.KeyTab)},
			wantFocus: "a",
		},
		"unbound key": {
			events:    []tcell.Event{runeKey('x')},
			wantFocus: "a",
		},
		"q quits": {
			events:    []tcell.Event{runeKey('q')},
			wantFocus: "a",
			wantQuit:  true,
		},
		"escape quits": {
			events:    []tcell.Event{key(tcell.KeyEscape)},
			wantFocus: "a",
			wantQuit:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newHost(t, row)

			quit := false
			for _, ev := range tt.events {
				quit = h.HandleEvent(ev)
			}
			assert.Equal(t, tt.wantQuit, quit)
			_, r := h.Controller().Focused()
			require.NotNil(t, r)
			assert.Equal(t, tt.wantFocus, r.ID())
		})
	}
}

func TestHost_EnterActivates(t *testing.T) {
	h, _ := newHost(t, row)

	assert.False(t, h.HandleEvent(key(tcell.KeyEnter)))
	assert.False(t, h.HandleEvent(runeKey(' ')))

	a := h.Layout().Box("a")
	assert.Equal(t, 2, a.Activations())
	assert.False(t, a.Pressed())
	assert.Equal(t, "activated Alpha", h.Status())
}

func TestHost_ActivateCallbackKeepsStatus(t *testing.T) {
	h, _ := newHost(t, row)
	h.Layout().Box("a").SetOnActivate(func(b *layoutfile.Box) {
		h.SetStatus("picked " + b.ID())
	})

	h.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, "picked a", h.Status())
}

func TestHost_MouseClick(t *testing.T) {
	type tc struct {
		opts        []Option
		x, y        int
		wantFocus   string
		wantPressed bool
		wantStatus  string
	}

	tests := map[string]tc{
		"click another box": {
			x:           14,
			y:           1,
			wantFocus:   "b",
			wantPressed: true,
			wantStatus:  "activated Beta",
		},
		"click the gap": {
			x:          11,
			y:          1,
			wantFocus:  "a",
			wantStatus: "row: 3 regions",
		},
		"click a hidden box": {
			x:          26,
			y:          1,
			wantFocus:  "a",
			wantStatus: "row: 3 regions",
		},
		"click with offset": {
			opts:        []Option{WithOffset(2, 1)},
			x:           16,
			y:           2,
			wantFocus:   "b",
			wantPressed: true,
			wantStatus:  "activated Beta",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newHost(t, row, tt.opts...)

			h.HandleEvent(tcell.NewEventMouse(tt.x, tt.y, tcell.Button1, tcell.ModNone))
			_, r := h.Controller().Focused()
			require.NotNil(t, r)
			assert.Equal(t, tt.wantFocus, r.ID())
			focused := h.Layout().Box(tt.wantFocus)
			assert.Equal(t, tt.wantPressed, focused.Pressed())

			// Drag events while held do not press again.
			h.HandleEvent(tcell.NewEventMouse(tt.x+1, tt.y, tcell.Button1, tcell.ModNone))
			h.HandleEvent(tcell.NewEventMouse(tt.x, tt.y, tcell.ButtonNone, tcell.ModNone))
			assert.False(t, focused.Pressed())
			assert.Equal(t, tt.wantStatus, h.Status())
		})
	}
}

func TestHost_Draw(t *testing.T) {
	h, s := newHost(t, row)
	h.Draw()

	lines := capture(s)
	assert.Equal(t, '╔', []rune(lines[0])[0], "focused box uses a double border")
	assert.Equal(t, '┌', []rune(lines[0])[12])
	assert.Contains(t, lines[1], "Alpha")
	assert.Contains(t, lines[1], "Beta")
	assert.NotContains(t, lines[1], "Hidden")
	assert.Contains(t, lines[7], "focus: Alpha")

	h.HandleEvent(key(tcell.KeyRight))
	h.Draw()
	lines = capture(s)
	assert.Equal(t, '┌', []rune(lines[0])[0])
	assert.Equal(t, '╔', []rune(lines[0])[12])
	assert.Contains(t, lines[7], "focus: Beta")
}

func TestHost_DrawOffset(t *testing.T) {
	h, s := newHost(t, row, WithOffset(2, 1))
	h.Draw()

	lines := capture(s)
	assert.Equal(t, '╔', []rune(lines[1])[2])
	assert.Contains(t, lines[2], "Alpha")
}

func TestHost_PostLayout(t *testing.T) {
	h, s := newHost(t, row)
	h.HandleEvent(key(tcell.KeyRight))

	next, err := layoutfile.Parse([]byte(`
name: column
default_nav_index: 0
regions:
  - id: d
    label: Delta
    x: 0
    y: 0
    width: 10
    height: 3
  - id: b
    label: Beta
    x: 0
    y: 4
    width: 10
    height: 3
`))
	require.NoError(t, err)
	require.NoError(t, h.PostLayout(next, nil))

	assert.False(t, h.HandleEvent(nextInterrupt(t, s)))

	assert.Same(t, next, h.Layout())
	assert.Equal(t, 2, h.Controller().Len())
	_, r := h.Controller().Focused()
	require.NotNil(t, r)
	assert.Equal(t, "d", r.ID(), "without refocus by id the first focusable region is used")
}

func TestHost_PostLayoutRefocusByID(t *testing.T) {
	s := newScreen(t, 40, 8)
	h, err := New(s, dpad.MustNewController(dpad.WithRefocusByID()))
	require.NoError(t, err)

	first, err := layoutfile.Parse([]byte(row))
	require.NoError(t, err)
	require.NoError(t, h.Load(first))
	h.HandleEvent(key(tcell.KeyRight))

	second, err := layoutfile.Parse([]byte(row))
	require.NoError(t, err)
	require.NoError(t, h.PostLayout(second, nil))
	h.HandleEvent(nextInterrupt(t, s))

	_, r := h.Controller().Focused()
	require.NotNil(t, r)
	assert.Equal(t, "b", r.ID())
	assert.Same(t, second.Box("b"), r.Element())
}

func TestHost_PostLayoutError(t *testing.T) {
	h, s := newHost(t, row)

	require.NoError(t, h.PostLayout(nil, errors.New("boom")))
	h.HandleEvent(nextInterrupt(t, s))

	assert.Equal(t, "reload failed: boom", h.Status())
	assert.Equal(t, 3, h.Controller().Len(), "previous layout stays")
}

func TestHost_Run(t *testing.T) {
	t.Run("quit key", func(t *testing.T) {
		h, s := newHost(t, row)

		done := make(chan error, 1)
		go func() { done <- h.Run(context.Background()) }()
		require.NoError(t, s.PostEvent(runeKey('q')))

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return")
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		h, _ := newHost(t, row)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- h.Run(ctx) }()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return")
		}
	})
}
