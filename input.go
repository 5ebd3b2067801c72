package dpad

// InputKind identifies a discrete input delivered by the host's input source.
type InputKind uint8

const (
	// InputMove requests a focus move in Input.Direction.
	InputMove InputKind = iota
	// InputPress is activation-down (for example Enter pressed).
	InputPress
	// InputRelease is activation-up. It activates the pressed region.
	InputRelease
	// InputActivate is a press and release in one step, for input sources
	// that do not report key-up events.
	InputActivate
)

// String returns a human-readable representation of the input kind.
func (k InputKind) String() string {
	switch k {
	case InputMove:
		return "move"
	case InputPress:
		return "press"
	case InputRelease:
		return "release"
	case InputActivate:
		return "activate"
	}
	return "unknown"
}

// Input is one decoded event from the input source.
type Input struct {
	Kind      InputKind
	Direction Direction // only meaningful for InputMove
}

// MoveInput returns an InputMove for d.
func MoveInput(d Direction) Input {
	return Input{Kind: InputMove, Direction: d}
}

// Dispatch routes in to the controller. It returns true if the engine
// consumed the input, in which case the input source should suppress the
// platform's default handling. Moves are consumed whenever something is
// focused, even when focus bounces at the edge of the grid.
func (c *Controller) Dispatch(in Input) bool {
	switch in.Kind {
	case InputMove:
		if !in.Direction.Valid() {
			return false
		}
		hadFocus := c.focused != nil
		moved := c.MoveFocus(in.Direction)
		return hadFocus || moved
	case InputPress:
		return c.Press()
	case InputRelease:
		return c.Release()
	case InputActivate:
		if !c.Press() {
			return false
		}
		return c.Release()
	}
	return false
}
