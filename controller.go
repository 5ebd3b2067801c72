package dpad

import (
	"fmt"

	"github.com/grindlemire/go-dpad/internal/debug"
)

// Controller owns an ordered set of regions, the neighbor graph between them
// and the single focus reference.
//
// It is not safe for concurrent use. All calls are expected to come from the
// goroutine that delivers input and layout notifications. Rebuild is O(n^2)
// in the number of regions; focus grids are expected to be small.
type Controller struct {
	regions []*Region // registration order, used only as stable indexing
	focused *Region   // nil = no focus
	pressed *Region   // region that received activation-down

	coneAngle   float64 // radians
	fallback    bool
	refocusByID bool
	lostID      string
	onChange    func(prev, next int)
}

// NewController creates an empty Controller.
// Use Register to add regions and Rebuild to compute the neighbor graph.
func NewController(opts ...Option) (*Controller, error) {
	c := &Controller{
		coneAngle: degreesToRadians(DefaultConeAngle),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewController creates a Controller and panics on error.
func MustNewController(opts ...Option) *Controller {
	c, err := NewController(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Register wraps elem in a new Region and appends it to the registry.
// The region has no neighbors until the next Rebuild.
func (c *Controller) Register(elem Element) (*Region, error) {
	r, err := NewRegion(elem)
	if err != nil {
		return nil, err
	}
	if idx := c.IndexOf(elem); idx != -1 {
		return nil, fmt.Errorf("%w (index %d)", ErrDuplicateElement, idx)
	}

	c.regions = append(c.regions, r)
	debug.Log("Controller.Register: adding %T at index %d (focusable=%v)", elem, len(c.regions)-1, r.IsFocusable())
	return r, nil
}

// Unregister removes elem from the registry. It returns false if elem was
// not registered.
//
// Removing the focused region clears focus. Because indices shift, every
// neighbor table is reset and the graph stays empty until the next Rebuild.
func (c *Controller) Unregister(elem Element) bool {
	idx := c.IndexOf(elem)
	if idx == -1 {
		return false
	}
	r := c.regions[idx]

	if c.pressed == r {
		c.clearPressed()
	}

	wasFocused := c.focused == r
	if wasFocused {
		blur(r)
		c.focused = nil
		if c.refocusByID {
			c.lostID = r.ID()
		}
	}

	c.regions = append(c.regions[:idx], c.regions[idx+1:]...)
	for _, other := range c.regions {
		other.ResetNeighbors()
	}

	debug.Log("Controller.Unregister: removed index %d (wasFocused=%v), total=%d", idx, wasFocused, len(c.regions))
	if wasFocused {
		c.notify(idx, -1)
	}
	return true
}

// Len returns the number of registered regions.
func (c *Controller) Len() int {
	return len(c.regions)
}

// Region returns the region at index i, or nil if i is out of range.
func (c *Controller) Region(i int) *Region {
	if i < 0 || i >= len(c.regions) {
		return nil
	}
	return c.regions[i]
}

// Regions returns a copy of the registry in registration order.
func (c *Controller) Regions() []*Region {
	out := make([]*Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// IndexOf returns the index of the region wrapping elem, or -1.
func (c *Controller) IndexOf(elem Element) int {
	for i, r := range c.regions {
		if r.elem == elem {
			return i
		}
	}
	return -1
}

// RegionAt returns the index of the focusable region containing the point
// (x, y), or -1. Where regions overlap the later one wins, matching the
// order hosts draw them in.
func (c *Controller) RegionAt(x, y float64) int {
	for i := len(c.regions) - 1; i >= 0; i-- {
		r := c.regions[i]
		if r.IsFocusable() && r.elem.Bounds().Contains(x, y) {
			return i
		}
	}
	return -1
}

func (c *Controller) indexOfRegion(target *Region) int {
	if target == nil {
		return -1
	}
	for i, r := range c.regions {
		if r == target {
			return i
		}
	}
	return -1
}

// Focused returns the focused index and region, or (-1, nil) if nothing is
// focused.
func (c *Controller) Focused() (int, *Region) {
	idx := c.indexOfRegion(c.focused)
	if idx == -1 {
		return -1, nil
	}
	return idx, c.focused
}

// FocusedIndex returns the focused index, or -1 if nothing is focused.
func (c *Controller) FocusedIndex() int {
	return c.indexOfRegion(c.focused)
}

// Rebuild recomputes every region's neighbor table from the current
// geometry. Only focusable regions act as sources or targets; the tables of
// non-focusable regions are left empty. Rebuild never changes focus, except
// for re-attaching a lost focus when WithRefocusByID is set.
func (c *Controller) Rebuild() {
	n := len(c.regions)
	metrics := make([]Metrics, n)
	focusable := make([]bool, n)
	for i, r := range c.regions {
		r.ResetNeighbors()
		focusable[i] = r.IsFocusable()
		if focusable[i] {
			metrics[i] = r.Metrics()
		}
	}

	links := 0
	for i, from := range c.regions {
		if !focusable[i] {
			continue
		}

		var best [numDirections]int
		for j := range c.regions {
			if j == i || !focusable[j] {
				continue
			}
			for _, d := range Directions {
				dist, ok := directionalDistance(metrics[i], metrics[j], d, c.coneAngle)
				if !ok {
					continue
				}
				// Strict < keeps the first candidate in registration order on ties.
				if _, has := from.Neighbor(d); !has || dist < best[d] {
					best[d] = dist
					from.SetNeighbor(d, j)
				}
			}
		}

		for _, d := range Directions {
			if _, ok := from.Neighbor(d); ok {
				links++
			}
		}
	}

	debug.Log("Controller.Rebuild: regions=%d links=%d", n, links)
	c.reattach()
}

// reattach restores focus to the replacement of a removed focused region.
func (c *Controller) reattach() {
	if !c.refocusByID || c.focused != nil || c.lostID == "" {
		return
	}
	for i, r := range c.regions {
		if r.ID() == c.lostID {
			debug.Log("Controller.reattach: id %q found at index %d", c.lostID, i)
			c.FocusIndex(i)
			return
		}
	}
}

// FocusIndex moves focus to the region at index i and calls its Focus
// method. An out-of-range index is not an error: it names no region and
// leaves the state unchanged. Returns true if the index resolved.
func (c *Controller) FocusIndex(i int) bool {
	next := c.Region(i)
	if next == nil {
		debug.Log("Controller.FocusIndex: index %d out of range (total=%d)", i, len(c.regions))
		return false
	}

	prevIdx := c.FocusedIndex()
	if c.focused != nil && c.focused != next {
		if c.pressed == c.focused {
			c.clearPressed()
		}
		blur(c.focused)
	}

	c.focused = next
	c.lostID = ""
	next.elem.Focus()
	debug.Log("Controller.FocusIndex: %d -> %d", prevIdx, i)

	if prevIdx != i {
		c.notify(prevIdx, i)
	}
	return true
}

// ClearFocus drops focus without focusing anything else.
func (c *Controller) ClearFocus() {
	if c.focused == nil {
		return
	}
	prevIdx := c.FocusedIndex()
	if c.pressed == c.focused {
		c.clearPressed()
	}
	blur(c.focused)
	c.focused = nil
	c.lostID = ""
	c.notify(prevIdx, -1)
}

// MoveFocus follows the focused region's neighbor link in direction d.
// With no neighbor in that direction focus stays put. With no focus the call
// is a no-op unless WithFocusFallback is set. Returns true if focus changed
// region.
func (c *Controller) MoveFocus(d Direction) bool {
	if !d.Valid() {
		return false
	}

	if c.focused == nil {
		if !c.fallback {
			debug.Log("Controller.MoveFocus(%s): no focus", d)
			return false
		}
		for i, r := range c.regions {
			if r.IsFocusable() {
				debug.Log("Controller.MoveFocus(%s): no focus, falling back to index %d", d, i)
				return c.FocusIndex(i)
			}
		}
		return false
	}

	next, ok := c.focused.Neighbor(d)
	if !ok {
		debug.Log("Controller.MoveFocus(%s): no neighbor, staying at %d", d, c.FocusedIndex())
		return false
	}
	return c.FocusIndex(next)
}

// Move decodes v and calls MoveFocus. Vectors that do not name exactly one
// cardinal direction are ignored.
func (c *Controller) Move(v Vector) bool {
	d, ok := v.Direction()
	if !ok {
		debug.Log("Controller.Move: ignoring non-cardinal vector %+v", v)
		return false
	}
	return c.MoveFocus(d)
}

// Activate calls Activate on the focused element.
// Returns false if nothing is focused.
func (c *Controller) Activate() bool {
	if c.focused == nil {
		return false
	}
	debug.Log("Controller.Activate: index %d", c.FocusedIndex())
	c.focused.elem.Activate()
	return true
}

// Press handles activation-down: the focused element enters its pressed
// state. Returns false if nothing is focused.
func (c *Controller) Press() bool {
	if c.focused == nil {
		return false
	}
	if c.pressed != nil && c.pressed != c.focused {
		c.clearPressed()
	}
	c.pressed = c.focused
	if p, ok := c.focused.elem.(Presser); ok {
		p.SetPressed(true)
	}
	return true
}

// Release handles activation-up: the pressed state is cleared and the
// focused element is activated if it is the one that was pressed.
// Returns false if nothing is focused.
func (c *Controller) Release() bool {
	if c.focused == nil {
		return false
	}
	wasPressed := c.pressed == c.focused
	c.clearPressed()
	if wasPressed {
		return c.Activate()
	}
	return true
}

func (c *Controller) clearPressed() {
	if c.pressed == nil {
		return
	}
	if p, ok := c.pressed.elem.(Presser); ok {
		p.SetPressed(false)
	}
	c.pressed = nil
}

func (c *Controller) notify(prev, next int) {
	if c.onChange != nil {
		c.onChange(prev, next)
	}
}

func blur(r *Region) {
	if b, ok := r.elem.(Blurrer); ok {
		b.Blur()
	}
}
