package dpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 5.0, r.X)
	assert.Equal(t, 10.0, r.Y)
	assert.Equal(t, 20.0, r.Width)
	assert.Equal(t, 15.0, r.Height)
}

func TestRect_Metrics(t *testing.T) {
	type tc struct {
		rect Rect
		want Metrics
	}

	tests := map[string]tc{
		"standard rect": {
			rect: NewRect(5, 10, 20, 15),
			want: Metrics{Left: 5, Right: 25, Top: 10, Bottom: 25, Width: 20, Height: 15, Center: Point{X: 15, Y: 17.5}},
		},
		"negative position": {
			rect: NewRect(-5, -5, 10, 10),
			want: Metrics{Left: -5, Right: 5, Top: -5, Bottom: 5, Width: 10, Height: 10, Center: Point{X: 0, Y: 0}},
		},
		"zero size": {
			rect: NewRect(7, 3, 0, 0),
			want: Metrics{Left: 7, Right: 7, Top: 3, Bottom: 3, Center: Point{X: 7, Y: 3}},
		},
		"fractional": {
			rect: NewRect(0.5, 0.25, 1, 0.5),
			want: Metrics{Left: 0.5, Right: 1.5, Top: 0.25, Bottom: 0.75, Width: 1, Height: 0.5, Center: Point{X: 1, Y: 0.5}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rect.Metrics())
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		empty bool
	}

	tests := map[string]tc{
		"normal":          {rect: NewRect(0, 0, 10, 10), empty: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), empty: true},
		"negative width":  {rect: NewRect(0, 0, -1, 10), empty: true},
		"sub-cell but ok": {rect: NewRect(0, 0, 0.5, 0.5), empty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.rect.IsEmpty())
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 10, 10)

	assert.True(t, r.Contains(10, 10), "top-left corner is inside")
	assert.True(t, r.Contains(19.9, 19.9))
	assert.False(t, r.Contains(20, 15), "right edge is outside")
	assert.False(t, r.Contains(15, 20), "bottom edge is outside")
	assert.False(t, r.Contains(9, 15))
}

func TestRect_Intersects(t *testing.T) {
	type tc struct {
		a, b Rect
		want bool
	}

	tests := map[string]tc{
		"overlapping":    {a: NewRect(0, 0, 10, 10), b: NewRect(5, 5, 10, 10), want: true},
		"touching edges": {a: NewRect(0, 0, 10, 10), b: NewRect(10, 0, 10, 10), want: false},
		"disjoint":       {a: NewRect(0, 0, 10, 10), b: NewRect(50, 50, 10, 10), want: false},
		"contained":      {a: NewRect(0, 0, 10, 10), b: NewRect(2, 2, 2, 2), want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a), "Intersects should be symmetric")
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	moved := r.Translate(10, -2)

	assert.Equal(t, NewRect(11, 0, 3, 4), moved)
	assert.Equal(t, NewRect(1, 2, 3, 4), r, "Translate must not mutate the receiver")
}
