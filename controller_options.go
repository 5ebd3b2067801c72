package dpad

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by every error returned from an Option.
var ErrInvalidOption = errors.New("dpad: invalid option")

// Option is a functional option for configuring a Controller.
type Option func(*Controller) error

// WithConeAngle sets the half-angle, in degrees, of the forward cone used to
// decide whether a candidate lies in the requested direction. Default is 45.
// Valid range is (0, 90]; 90 accepts anything on the correct side.
func WithConeAngle(degrees float64) Option {
	return func(c *Controller) error {
		if !(degrees > 0 && degrees <= 90) {
			return fmt.Errorf("%w: cone angle must be in (0, 90] degrees, got %v", ErrInvalidOption, degrees)
		}
		c.coneAngle = degreesToRadians(degrees)
		return nil
	}
}

// WithFocusFallback makes MoveFocus select the lowest-index focusable region
// when nothing is focused. By default a move without focus is a no-op.
func WithFocusFallback() Option {
	return func(c *Controller) error {
		c.fallback = true
		return nil
	}
}

// WithRefocusByID makes the controller remember the ID of a focused region
// that gets unregistered. The next Rebuild focuses the first region whose
// element reports the same ID, as long as nothing else was focused in the
// meantime. Elements without an ID are never re-attached.
func WithRefocusByID() Option {
	return func(c *Controller) error {
		c.refocusByID = true
		return nil
	}
}

// WithOnFocusChange sets a callback fired after the focused index changes.
// prev or next is -1 when there was or is no focus.
func WithOnFocusChange(fn func(prev, next int)) Option {
	return func(c *Controller) error {
		if fn == nil {
			return fmt.Errorf("%w: focus change callback is nil", ErrInvalidOption)
		}
		c.onChange = fn
		return nil
	}
}
