package dpad

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Rect represents an on-screen rectangle.
// X and Y are the top-left corner; Width and Height are dimensions.
// Coordinates are floating point because hosts usually report fractional
// layout boxes; terminal hosts simply pass whole cells.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
// Empty rectangles are still valid navigation targets.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return max(r.X, other.X) < min(r.Right(), other.Right()) &&
		max(r.Y, other.Y) < min(r.Bottom(), other.Bottom())
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Metrics is the edge/centre snapshot of a rectangle used while building the
// neighbor graph. It is derived from a Rect on demand and never stored.
type Metrics struct {
	Left, Right   float64
	Top, Bottom   float64
	Width, Height float64
	Center        Point
}

// Metrics returns the edge snapshot of r.
func (r Rect) Metrics() Metrics {
	return Metrics{
		Left:   r.X,
		Right:  r.Right(),
		Top:    r.Y,
		Bottom: r.Bottom(),
		Width:  r.Width,
		Height: r.Height,
		Center: r.Center(),
	}
}
