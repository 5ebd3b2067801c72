package dpad

import "errors"

// NoNeighbor marks an empty slot in a region's neighbor table.
const NoNeighbor = -1

var (
	// ErrNilElement is returned when a region is created without an element.
	// It signals a wiring bug in the host, not a transient layout condition.
	ErrNilElement = errors.New("dpad: region requires a non-nil element")
	// ErrDuplicateElement is returned when an element is registered twice.
	ErrDuplicateElement = errors.New("dpad: element is already registered")
)

// Geometry is implemented by anything that can report where it is on screen
// and whether it currently takes part in navigation.
type Geometry interface {
	// Bounds returns the live bounding box. It is queried on every rebuild.
	Bounds() Rect

	// Hidden reports whether the element is explicitly invisible.
	Hidden() bool

	// NavIndex returns the navigation opt-in marker. ok is false when the
	// marker is absent. A negative index opts the element out.
	NavIndex() (index int, ok bool)
}

// Sink receives the side effects of the focus state machine.
// The controller never reads anything back from it.
type Sink interface {
	// Focus is called when focus enters the element.
	Focus()

	// Activate is called when the focused element is activated
	// (the d-pad equivalent of a click).
	Activate()
}

// Element is the full capability set a host wraps around one UI element.
// Implementations must be comparable; identity is plain ==.
type Element interface {
	Geometry
	Sink
}

// Blurrer is optionally implemented by elements that want to know when focus
// leaves them.
type Blurrer interface {
	Blur()
}

// Presser is optionally implemented by elements that show a pressed state
// between activation-down and activation-up.
type Presser interface {
	SetPressed(pressed bool)
}

// Identifier is optionally implemented by elements with an identity that
// survives replacement (for example a stable key from the host's view tree).
type Identifier interface {
	ID() string
}

// Region is a navigable rectangle wrapping one Element, together with the
// cached index of its nearest neighbor in each direction.
type Region struct {
	elem      Element
	neighbors [numDirections]int
}

// NewRegion wraps elem in a Region with an empty neighbor table.
func NewRegion(elem Element) (*Region, error) {
	if elem == nil {
		return nil, ErrNilElement
	}
	r := &Region{elem: elem}
	r.ResetNeighbors()
	return r, nil
}

// MustNewRegion creates a Region and panics on error.
func MustNewRegion(elem Element) *Region {
	r, err := NewRegion(elem)
	if err != nil {
		panic(err)
	}
	return r
}

// Element returns the wrapped element.
func (r *Region) Element() Element {
	return r.elem
}

// Metrics returns the current edge snapshot of the element's bounds.
func (r *Region) Metrics() Metrics {
	return r.elem.Bounds().Metrics()
}

// IsFocusable reports whether the region takes part in navigation: it must not
// be hidden and must carry a non-negative nav index. Evaluated on every call.
func (r *Region) IsFocusable() bool {
	if r.elem.Hidden() {
		return false
	}
	idx, ok := r.elem.NavIndex()
	return ok && idx >= 0
}

// ID returns the element's stable identity, or "" if it has none.
func (r *Region) ID() string {
	if id, ok := r.elem.(Identifier); ok {
		return id.ID()
	}
	return ""
}

// ResetNeighbors clears every slot of the neighbor table.
func (r *Region) ResetNeighbors() {
	for i := range r.neighbors {
		r.neighbors[i] = NoNeighbor
	}
}

// SetNeighbor stores the neighbor index for d. Use NoNeighbor to clear a
// slot. Invalid directions are ignored.
func (r *Region) SetNeighbor(d Direction, index int) {
	if !d.Valid() {
		return
	}
	if index < 0 {
		index = NoNeighbor
	}
	r.neighbors[d] = index
}

// Neighbor returns the neighbor index for d, or (NoNeighbor, false) when the
// slot is empty or d is invalid.
func (r *Region) Neighbor(d Direction) (int, bool) {
	if !d.Valid() || r.neighbors[d] == NoNeighbor {
		return NoNeighbor, false
	}
	return r.neighbors[d], true
}
