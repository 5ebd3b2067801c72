// Package layoutfile loads navigation layouts from YAML documents.
//
// A layout file describes a screen as a list of rectangular regions:
//
//	name: gallery
//	focus: play
//	default_nav_index: 0
//	regions:
//	  - id: play
//	    label: Play
//	    x: 0
//	    y: 0
//	    width: 10
//	    height: 3
//	  - id: settings
//	    label: Settings
//	    x: 12
//	    y: 0
//	    width: 10
//	    height: 3
//	    hidden: true
//
// Each region becomes a Box, which implements dpad.Element and can be
// registered with a dpad.Controller.
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dpad"
	"github.com/grindlemire/go-dpad/internal/debug"
)

// ErrInvalidLayout is wrapped by every validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// Document is the on-disk form of a layout.
type Document struct {
	Name string `yaml:"name"`
	// Focus names the region focused when the layout is first shown.
	Focus string `yaml:"focus,omitempty"`
	// DefaultNavIndex applies to regions that omit nav_index. When both are
	// absent the region is not focusable.
	DefaultNavIndex *int         `yaml:"default_nav_index,omitempty"`
	Regions         []RegionSpec `yaml:"regions"`
}

// RegionSpec describes one region in a Document.
type RegionSpec struct {
	ID       string  `yaml:"id,omitempty"`
	Label    string  `yaml:"label,omitempty"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	NavIndex *int    `yaml:"nav_index,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`
}

// Layout is a decoded, validated Document whose regions are ready to be
// registered with a controller.
type Layout struct {
	Name  string
	Focus string
	Boxes []*Box
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout document. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return doc.Build()
}

// Build validates the document and creates its boxes. Regions without an
// id are given a random UUID.
func (d *Document) Build() (*Layout, error) {
	l := &Layout{Name: d.Name, Focus: d.Focus}
	seen := make(map[string]int, len(d.Regions))

	for i, spec := range d.Regions {
		name := spec.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if spec.Width < 0 || spec.Height < 0 {
			return nil, fmt.Errorf("%w: region %s: negative size %gx%g", ErrInvalidLayout, name, spec.Width, spec.Height)
		}
		if spec.ID != "" {
			if prev, ok := seen[spec.ID]; ok {
				return nil, fmt.Errorf("%w: region %s: id already used by region #%d", ErrInvalidLayout, name, prev)
			}
			seen[spec.ID] = i
		}

		id := spec.ID
		if id == "" {
			id = uuid.NewString()
		}
		b := NewBox(id, spec.Label, dpad.NewRect(spec.X, spec.Y, spec.Width, spec.Height))
		b.name = name
		b.hidden = spec.Hidden
		switch {
		case spec.NavIndex != nil:
			b.SetNavIndex(*spec.NavIndex)
		case d.DefaultNavIndex != nil:
			b.SetNavIndex(*d.DefaultNavIndex)
		}
		l.Boxes = append(l.Boxes, b)
	}

	if d.Focus != "" {
		if _, ok := seen[d.Focus]; !ok {
			if near := closestID(d.Focus, seen); near != "" {
				return nil, fmt.Errorf("%w: focus %q does not name a region (did you mean %q?)", ErrInvalidLayout, d.Focus, near)
			}
			return nil, fmt.Errorf("%w: focus %q does not name a region", ErrInvalidLayout, d.Focus)
		}
	}

	debug.Log("layoutfile: built %q with %d regions", l.Name, len(l.Boxes))
	return l, nil
}

// maxSuggestDistance bounds the edit distance of a "did you mean" hint.
const maxSuggestDistance = 2

// closestID returns the id nearest to name by edit distance, or "" if none
// is within maxSuggestDistance. Ties go to the earliest region.
func closestID(name string, ids map[string]int) string {
	best, bestDist, bestIdx := "", maxSuggestDistance+1, 0
	for id, idx := range ids {
		dist := levenshtein.ComputeDistance(name, id)
		if dist < bestDist || (dist == bestDist && best != "" && idx < bestIdx) {
			best, bestDist, bestIdx = id, dist, idx
		}
	}
	return best
}

// Box returns the box with the given id, or nil.
func (l *Layout) Box(id string) *Box {
	for _, b := range l.Boxes {
		if b.id == id {
			return b
		}
	}
	return nil
}

// Warnings lists suspicious but valid geometry: visible regions with zero
// area, which hosts cannot draw, and visible regions that overlap.
func (l *Layout) Warnings() []string {
	var out []string
	for i, b := range l.Boxes {
		if b.hidden {
			continue
		}
		if b.bounds.IsEmpty() {
			out = append(out, fmt.Sprintf("region %s has zero size", b.name))
			continue
		}
		for _, o := range l.Boxes[i+1:] {
			if !o.hidden && o.bounds.Intersects(b.bounds) {
				out = append(out, fmt.Sprintf("regions %s and %s overlap", b.name, o.name))
			}
		}
	}
	return out
}

// Register adds every box to c in document order. It stops at the first
// failure.
func (l *Layout) Register(c *dpad.Controller) error {
	for _, b := range l.Boxes {
		if _, err := c.Register(b); err != nil {
			return fmt.Errorf("register %s: %w", b.id, err)
		}
	}
	return nil
}

// Unregister removes every box of l from c.
func (l *Layout) Unregister(c *dpad.Controller) {
	for _, b := range l.Boxes {
		c.Unregister(b)
	}
}

// FocusInitial focuses the layout's focus region, or the first focusable
// box when none is named. c must already be rebuilt. It reports whether
// anything was focused.
func (l *Layout) FocusInitial(c *dpad.Controller) bool {
	if l.Focus != "" {
		if b := l.Box(l.Focus); b != nil {
			if idx := c.IndexOf(b); idx >= 0 && c.Region(idx).IsFocusable() {
				return c.FocusIndex(idx)
			}
		}
	}
	for _, b := range l.Boxes {
		idx := c.IndexOf(b)
		if idx >= 0 && c.Region(idx).IsFocusable() {
			return c.FocusIndex(idx)
		}
	}
	return false
}
