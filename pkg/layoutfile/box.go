package layoutfile

import "github.com/grindlemire/go-dpad"

// Box is a static rectangle from a layout file. It implements dpad.Element
// together with the optional Blurrer, Presser and Identifier capabilities.
//
// Box keeps only presentation state (focused, pressed, activation count);
// hosts read it back when drawing.
type Box struct {
	id     string
	name   string
	label  string
	bounds dpad.Rect
	hidden bool

	navIndex int
	hasIndex bool

	focused     bool
	pressed     bool
	activations int
	onActivate  func(*Box)
}

// NewBox creates a visible box with no nav index.
func NewBox(id, label string, bounds dpad.Rect) *Box {
	return &Box{id: id, name: id, label: label, bounds: bounds}
}

// Bounds implements dpad.Geometry.
func (b *Box) Bounds() dpad.Rect { return b.bounds }

// Hidden implements dpad.Geometry.
func (b *Box) Hidden() bool { return b.hidden }

// NavIndex implements dpad.Geometry.
func (b *Box) NavIndex() (int, bool) { return b.navIndex, b.hasIndex }

// ID implements dpad.Identifier.
func (b *Box) ID() string { return b.id }

// Name identifies the box in reports. It is the id from the layout file, or
// "#n" (the region's position in the document) when the file gave none, so
// it stays the same across loads where a generated ID does not.
func (b *Box) Name() string { return b.name }

// Label returns the text shown inside the box.
func (b *Box) Label() string { return b.label }

// SetBounds moves or resizes the box. Callers rebuild the controller
// afterwards.
func (b *Box) SetBounds(r dpad.Rect) { b.bounds = r }

// SetHidden changes visibility.
func (b *Box) SetHidden(hidden bool) { b.hidden = hidden }

// SetNavIndex opts the box into navigation.
func (b *Box) SetNavIndex(i int) {
	b.navIndex = i
	b.hasIndex = true
}

// ClearNavIndex opts the box out of navigation.
func (b *Box) ClearNavIndex() {
	b.navIndex = 0
	b.hasIndex = false
}

// SetOnActivate sets a callback invoked after each activation.
func (b *Box) SetOnActivate(fn func(*Box)) { b.onActivate = fn }

// Focus implements dpad.Sink.
func (b *Box) Focus() { b.focused = true }

// Blur implements dpad.Blurrer.
func (b *Box) Blur() {
	b.focused = false
	b.pressed = false
}

// SetPressed implements dpad.Presser.
func (b *Box) SetPressed(pressed bool) { b.pressed = pressed }

// Activate implements dpad.Sink.
func (b *Box) Activate() {
	b.activations++
	if b.onActivate != nil {
		b.onActivate(b)
	}
}

// Focused reports whether the box currently holds focus.
func (b *Box) Focused() bool { return b.focused }

// Pressed reports whether an activation is in progress on the box.
func (b *Box) Pressed() bool { return b.pressed }

// Activations returns how many times the box has been activated.
func (b *Box) Activations() int { return b.activations }

var (
	_ dpad.Element    = (*Box)(nil)
	_ dpad.Blurrer    = (*Box)(nil)
	_ dpad.Presser    = (*Box)(nil)
	_ dpad.Identifier = (*Box)(nil)
)
