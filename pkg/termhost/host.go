package termhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/internal/debug"
	"github.com/grindlemire/go-dpad/pkg/layoutfile"
)

var (
	// ErrNilScreen is returned by New when no screen is given.
	ErrNilScreen = errors.New("termhost: nil screen")
	// ErrNilController is returned by New when no controller is given.
	ErrNilController = errors.New("termhost: nil controller")
)

// layoutEvent carries a reloaded layout from another goroutine into the
// event loop.
type layoutEvent struct {
	layout *layoutfile.Layout
	err    error
}

// stopEvent wakes PollEvent when the Run context is cancelled.
type stopEvent struct{}

// Host draws a layout on a tcell screen and drives a controller from key
// events. All methods except PostLayout must be called from the goroutine
// running Run.
type Host struct {
	screen tcell.Screen
	ctrl   *dpad.Controller
	layout *layoutfile.Layout

	keys    KeyMap
	styles  Styles
	wrap    bool
	offsetX int
	offsetY int

	status    string
	mouseDown bool
}

// New creates a Host. The caller owns the screen: it must call Init before
// Run and Fini afterwards.
func New(screen tcell.Screen, ctrl *dpad.Controller, opts ...Option) (*Host, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if ctrl == nil {
		return nil, ErrNilController
	}
	h := &Host{
		screen: screen,
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Controller returns the controller driven by the host.
func (h *Host) Controller() *dpad.Controller { return h.ctrl }

// Layout returns the layout currently shown, or nil.
func (h *Host) Layout() *layoutfile.Layout { return h.layout }

// Status returns the text of the status line.
func (h *Host) Status() string { return h.status }

// SetStatus replaces the text of the status line.
func (h *Host) SetStatus(s string) { h.status = s }

// Load replaces the current layout with l, rebuilds the neighbor graph and
// focuses l's initial region when nothing is focused afterwards. On a
// registration failure the previous layout stays unregistered and the
// controller is left empty.
func (h *Host) Load(l *layoutfile.Layout) error {
	if l == nil {
		return fmt.Errorf("termhost: nil layout")
	}
	if h.layout != nil {
		h.layout.Unregister(h.ctrl)
		h.layout = nil
	}
	if err := l.Register(h.ctrl); err != nil {
		l.Unregister(h.ctrl)
		h.ctrl.Rebuild()
		return err
	}
	h.layout = l
	h.ctrl.Rebuild()
	if h.ctrl.FocusedIndex() < 0 {
		l.FocusInitial(h.ctrl)
	}
	h.status = fmt.Sprintf("%s: %d regions", l.Name, len(l.Boxes))
	debug.Log("termhost.Load: %q focused=%d", l.Name, h.ctrl.FocusedIndex())
	return nil
}

// PostLayout hands a layout (or a load error) to the event loop. It is safe
// to call from any goroutine, typically a layoutfile.Watch callback.
func (h *Host) PostLayout(l *layoutfile.Layout, err error) error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(layoutEvent{layout: l, err: err}))
}

// HandleEvent applies one tcell event. It returns true when the loop should
// stop.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case stopEvent:
			return true
		case layoutEvent:
			h.applyLayout(data)
		}
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	b, ok := h.keys.Lookup(ev)
	if !ok {
		debug.Log("termhost: unbound key %s", ev.Name())
		return false
	}
	switch b.Action {
	case ActionQuit:
		return true
	case ActionIgnore:
		return false
	}

	consumed := h.dispatch(b.Input)
	debug.Log("termhost: %s -> %s consumed=%v", ev.Name(), b.Input.Kind, consumed)
	return false
}

// handleMouse maps the primary button onto press and release of the region
// under the pointer.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !h.mouseDown:
		h.mouseDown = true
		x, y := ev.Position()
		// Sample the middle of the clicked cell in layout coordinates.
		i := h.ctrl.RegionAt(float64(x-h.offsetX)+0.5, float64(y-h.offsetY)+0.5)
		if i < 0 {
			return
		}
		h.ctrl.FocusIndex(i)
		h.dispatch(dpad.Input{Kind: dpad.InputPress})
	case !down && h.mouseDown:
		h.mouseDown = false
		h.dispatch(dpad.Input{Kind: dpad.InputRelease})
	}
}

// dispatch feeds in to the controller and reports an activation on the
// status line, unless the activation callback set its own status.
func (h *Host) dispatch(in dpad.Input) bool {
	before, count := h.status, focusedActivations(h.ctrl)
	consumed := h.ctrl.Dispatch(in)
	if h.status == before && focusedActivations(h.ctrl) > count {
		_, r := h.ctrl.Focused()
		h.status = "activated " + label(r)
	}
	return consumed
}

func focusedActivations(c *dpad.Controller) int {
	if _, r := c.Focused(); r != nil {
		if b, ok := r.Element().(*layoutfile.Box); ok {
			return b.Activations()
		}
	}
	return 0
}

func (h *Host) applyLayout(ev layoutEvent) {
	if ev.err != nil {
		h.status = "reload failed: " + ev.err.Error()
		debug.Log("termhost: %s", h.status)
		return
	}
	if err := h.Load(ev.layout); err != nil {
		h.status = "reload failed: " + err.Error()
		debug.Log("termhost: %s", h.status)
	}
}

// Run draws the layout and processes events until a quit key is pressed,
// ctx is cancelled or the screen is finalized.
func (h *Host) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(stopEvent{}))
	})
	defer stop()

	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if h.HandleEvent(ev) {
			return nil
		}
		h.Draw()
	}
}

func label(r *dpad.Region) string {
	if b, ok := r.Element().(*layoutfile.Box); ok {
		if b.Label() != "" {
			return b.Label()
		}
		return b.Name()
	}
	if id := r.ID(); id != "" {
		return id
	}
	return "region"
}
