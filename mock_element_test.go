package dpad

// mockElement is a mock implementation of Element for testing.
type mockElement struct {
	id       string
	bounds   Rect
	hidden   bool
	navIndex int
	hasIndex bool

	focused       bool
	pressed       bool
	focusCalls    int
	blurCalls     int
	activateCalls int
	pressCalls    int
}

func newMockElement(id string, x, y, w, h float64) *mockElement {
	return &mockElement{
		id:       id,
		bounds:   NewRect(x, y, w, h),
		hasIndex: true,
	}
}

func (m *mockElement) Bounds() Rect { return m.bounds }

func (m *mockElement) Hidden() bool { return m.hidden }

func (m *mockElement) NavIndex() (int, bool) { return m.navIndex, m.hasIndex }

func (m *mockElement) ID() string { return m.id }

func (m *mockElement) Focus() {
	m.focused = true
	m.focusCalls++
}

func (m *mockElement) Blur() {
	m.focused = false
	m.blurCalls++
}

func (m *mockElement) Activate() {
	m.activateCalls++
}

func (m *mockElement) SetPressed(pressed bool) {
	m.pressed = pressed
	m.pressCalls++
}

// plainElement implements only the required Element methods.
type plainElement struct {
	bounds     Rect
	focusCalls int
}

func (p *plainElement) Bounds() Rect { return p.bounds }
func (p *plainElement) Hidden() bool { return false }
func (p *plainElement) NavIndex() (int, bool) { return 0, true }
func (p *plainElement) Focus() { p.focusCalls++ }
func (p *plainElement) Activate() {}

// grid returns rows*cols square elements of the given size and gap, in
// row-major order, named "r<row>c<col>".
func grid(rows, cols int, size, gap float64) []*mockElement {
	var out []*mockElement
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := float64(c) * (size + gap)
			y := float64(r) * (size + gap)
			out = append(out, newMockElement(gridName(r, c), x, y, size, size))
		}
	}
	return out
}

func gridName(r, c int) string {
	return "r" + string(rune('0'+r)) + "c" + string(rune('0'+c))
}
