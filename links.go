package dpad

import (
	"fmt"
	"strings"
)

// Link is one edge of the neighbor graph.
type Link struct {
	From      int
	To        int
	Direction Direction
	// Distance is the ranking distance under the current geometry,
	// or -1 if the link is stale (geometry changed since the last Rebuild).
	Distance int
}

// String formats the link as "0 -right-> 1 (99)".
func (l Link) String() string {
	return fmt.Sprintf("%d -%s-> %d (%d)", l.From, l.Direction, l.To, l.Distance)
}

// Links returns every non-empty neighbor slot, ordered by source index and
// then by direction. It is the text form of a debug overlay.
func (c *Controller) Links() []Link {
	var links []Link
	for i, r := range c.regions {
		for _, d := range Directions {
			to, ok := r.Neighbor(d)
			if !ok {
				continue
			}
			link := Link{From: i, To: to, Direction: d, Distance: -1}
			if target := c.Region(to); target != nil {
				if dist, ok := directionalDistance(r.Metrics(), target.Metrics(), d, c.coneAngle); ok {
					link.Distance = dist
				}
			}
			links = append(links, link)
		}
	}
	return links
}

// OneWayLinks returns the links whose target does not lead back to the
// source in the opposite direction, e.g. a -right-> b while b -left-> c.
func (c *Controller) OneWayLinks() []Link {
	var out []Link
	for _, l := range c.Links() {
		target := c.Region(l.To)
		if target == nil {
			out = append(out, l)
			continue
		}
		if back, ok := target.Neighbor(l.Direction.Opposite()); !ok || back != l.From {
			out = append(out, l)
		}
	}
	return out
}

// DumpGraph renders the neighbor table one region per line, e.g.
//
//	0: up=- down=2 left=- right=1
//
// label, when non-nil, supplies a name for each index.
func (c *Controller) DumpGraph(label func(i int) string) string {
	name := func(i int) string {
		if label != nil {
			return label(i)
		}
		return fmt.Sprintf("%d", i)
	}

	var b strings.Builder
	focused := c.FocusedIndex()
	for i, r := range c.regions {
		marker := " "
		if i == focused {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%s:", marker, name(i))
		if !r.IsFocusable() {
			b.WriteString(" (not focusable)\n")
			continue
		}
		for _, d := range Directions {
			if to, ok := r.Neighbor(d); ok {
				fmt.Fprintf(&b, " %s=%s", d, name(to))
			} else {
				fmt.Fprintf(&b, " %s=-", d)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
