package dpad

import "math"

// DefaultConeAngle is the default half-angle, in degrees, of the forward cone
// a candidate must reach into to count as lying in the requested direction.
const DefaultConeAngle = 45.0

// axisView projects a pair of metrics onto one movement direction: the
// primary axis runs along the movement, the cross axis is perpendicular.
type axisView struct {
	edgeGap   float64 // from's leading edge to to's near edge
	centerGap float64 // from's leading edge to to's centre
	reach     float64 // from's centre to to's centre along the movement
	origin    float64 // from's centre on the cross axis
	lo, hi    float64 // to's edges on the cross axis
	mid       float64 // to's centre on the cross axis
}

func project(from, to Metrics, d Direction) axisView {
	switch d {
	case Right:
		return axisView{
			edgeGap:   to.Left - from.Right,
			centerGap: to.Center.X - from.Right,
			reach:     to.Center.X - from.Center.X,
			origin:    from.Center.Y,
			lo:        to.Top,
			hi:        to.Bottom,
			mid:       to.Center.Y,
		}
	case Left:
		return axisView{
			edgeGap:   from.Left - to.Right,
			centerGap: from.Left - to.Center.X,
			reach:     from.Center.X - to.Center.X,
			origin:    from.Center.Y,
			lo:        to.Top,
			hi:        to.Bottom,
			mid:       to.Center.Y,
		}
	case Down:
		return axisView{
			edgeGap:   to.Top - from.Bottom,
			centerGap: to.Center.Y - from.Bottom,
			reach:     to.Center.Y - from.Center.Y,
			origin:    from.Center.X,
			lo:        to.Left,
			hi:        to.Right,
			mid:       to.Center.X,
		}
	default: // Up
		return axisView{
			edgeGap:   from.Top - to.Bottom,
			centerGap: from.Top - to.Center.Y,
			reach:     from.Center.Y - to.Center.Y,
			origin:    from.Center.X,
			lo:        to.Left,
			hi:        to.Right,
			mid:       to.Center.X,
		}
	}
}

// primaryGap is the smallest non-negative gap along the movement axis.
// The centre gap lets overlapping or abutting rectangles qualify as long as
// the candidate's centre is past from's leading edge.
func (v axisView) primaryGap() (float64, bool) {
	gap, ok := math.Inf(1), false
	for _, g := range [...]float64{v.edgeGap, v.centerGap} {
		if g >= 0 && g < gap {
			gap, ok = g, true
		}
	}
	return gap, ok
}

// crossDistance is the offset from from's centre to the closest of to's
// near edge, far edge and centre on the perpendicular axis.
func (v axisView) crossDistance() float64 {
	return min(
		math.Abs(v.origin-v.lo),
		math.Abs(v.origin-v.hi),
		math.Abs(v.origin-v.mid),
	)
}

// inCone reports whether the angular span of to's cross-axis extent, seen
// from from's centre, overlaps the cone [-halfAngle, +halfAngle] around the
// movement axis.
func (v axisView) inCone(halfAngle float64) bool {
	a := math.Atan2(v.lo-v.origin, v.reach)
	b := math.Atan2(v.hi-v.origin, v.reach)
	if a > b {
		a, b = b, a
	}
	return a <= halfAngle && b >= -halfAngle
}

// directionalDistance returns the ranking distance from `from` to `to` when
// moving in d, or ok=false when to is not a candidate in that direction.
// halfAngle is in radians.
func directionalDistance(from, to Metrics, d Direction, halfAngle float64) (dist int, ok bool) {
	v := project(from, to, d)

	primary, ok := v.primaryGap()
	if !ok {
		return 0, false
	}
	if !v.inCone(halfAngle) {
		return 0, false
	}

	cross := v.crossDistance()
	return int(math.Floor(math.Sqrt(primary*primary + cross*cross))), true
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
