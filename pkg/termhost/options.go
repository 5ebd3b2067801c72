package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Option is a functional option for configuring a Host.
type Option func(*Host) error

// WithKeyMap replaces the default key bindings.
// An empty key map is rejected since nothing could quit the loop.
func WithKeyMap(m KeyMap) Option {
	return func(h *Host) error {
		if len(m) == 0 {
			return fmt.Errorf("key map must not be empty")
		}
		h.keys = m
		return nil
	}
}

// WithWrapLabels wraps long labels across the box's inner rows instead of
// truncating them to one line.
func WithWrapLabels(wrap bool) Option {
	return func(h *Host) error {
		h.wrap = wrap
		return nil
	}
}

// WithStyles overrides the colors used to draw boxes.
func WithStyles(s Styles) Option {
	return func(h *Host) error {
		h.styles = s
		return nil
	}
}

// WithOffset shifts the layout by (x, y) cells on screen.
func WithOffset(x, y int) Option {
	return func(h *Host) error {
		if x < 0 || y < 0 {
			return fmt.Errorf("offset must not be negative, got (%d, %d)", x, y)
		}
		h.offsetX, h.offsetY = x, y
		return nil
	}
}

// Styles holds the tcell styles for each box state.
type Styles struct {
	Normal   tcell.Style
	Focused  tcell.Style
	Pressed  tcell.Style
	Disabled tcell.Style
	Status   tcell.Style
}

// DefaultStyles returns the styles used when WithStyles is not given.
func DefaultStyles() Styles {
	return Styles{
		Normal:   tcell.StyleDefault,
		Focused:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Pressed:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true),
		Disabled: tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true),
		Status:   tcell.StyleDefault.Reverse(true),
	}
}
