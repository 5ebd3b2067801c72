package termhost

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-dpad/pkg/layoutfile"
)

// cellRect is a box snapped to the terminal grid.
type cellRect struct {
	x, y, w, h int
}

func (h *Host) snap(b *layoutfile.Box) cellRect {
	r := b.Bounds().Translate(float64(h.offsetX), float64(h.offsetY))
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))
	return cellRect{
		x: x,
		y: y,
		w: int(math.Round(r.Right())) - x,
		h: int(math.Round(r.Bottom())) - y,
	}
}

// Draw renders every visible box and the status line, then shows the
// screen.
func (h *Host) Draw() {
	h.screen.Clear()
	if h.layout != nil {
		for _, b := range h.layout.Boxes {
			if b.Hidden() {
				continue
			}
			h.drawBox(b)
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) boxStyle(b *layoutfile.Box) tcell.Style {
	switch {
	case b.Pressed():
		return h.styles.Pressed
	case b.Focused():
		return h.styles.Focused
	}
	if i := h.ctrl.IndexOf(b); i < 0 || !h.ctrl.Region(i).IsFocusable() {
		return h.styles.Disabled
	}
	return h.styles.Normal
}

func (h *Host) drawBox(b *layoutfile.Box) {
	r := h.snap(b)
	if r.w <= 0 || r.h <= 0 {
		return
	}
	style := h.boxStyle(b)

	if r.w < 2 || r.h < 2 {
		// Too small for a border; fill it instead.
		for y := r.y; y < r.y+r.h; y++ {
			for x := r.x; x < r.x+r.w; x++ {
				h.screen.SetContent(x, y, '█', nil, style)
			}
		}
		return
	}

	horiz, vert := tcell.RuneHLine, tcell.RuneVLine
	if b.Focused() {
		horiz, vert = '═', '║'
	}
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		h.screen.SetContent(x, r.y, horiz, nil, style)
		h.screen.SetContent(x, bottom, horiz, nil, style)
	}
	for y := r.y + 1; y < bottom; y++ {
		h.screen.SetContent(r.x, y, vert, nil, style)
		h.screen.SetContent(right, y, vert, nil, style)
	}
	if b.Focused() {
		h.screen.SetContent(r.x, r.y, '╔', nil, style)
		h.screen.SetContent(right, r.y, '╗', nil, style)
		h.screen.SetContent(r.x, bottom, '╚', nil, style)
		h.screen.SetContent(right, bottom, '╝', nil, style)
	} else {
		h.screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, style)
		h.screen.SetContent(right, r.y, tcell.RuneURCorner, nil, style)
		h.screen.SetContent(r.x, bottom, tcell.RuneLLCorner, nil, style)
		h.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	}

	innerW, innerH := r.w-2, r.h-2
	if innerW <= 0 || innerH <= 0 {
		return
	}
	lines := fitLabel(b.Label(), innerW, innerH, h.wrap)
	top := r.y + 1 + (innerH-len(lines))/2
	for i, line := range lines {
		left := r.x + 1 + (innerW-runewidth.StringWidth(line))/2
		h.putString(left, top+i, line, style)
	}
}

// fitLabel returns the lines of label that fit in a w x h cell area. Without
// wrapping the label is cut to one line with an ellipsis.
func fitLabel(label string, w, h int, wrap bool) []string {
	if label == "" || w <= 0 || h <= 0 {
		return nil
	}
	if !wrap || h == 1 {
		return []string{runewidth.Truncate(label, w, "…")}
	}
	lines := wrapWords(label, w)
	if len(lines) > h {
		lines = lines[:h]
		lines[h-1] += "…"
	}
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, w, "…")
	}
	return lines
}

// wrapWords breaks s at spaces so that each line is at most w cells wide.
// Single words wider than w are left for the caller to truncate.
func wrapWords(s string, w int) []string {
	var (
		lines []string
		cur   string
	)
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= w:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// putString writes s starting at (x, y), advancing by each rune's cell
// width. It returns the column after the last rune.
func (h *Host) putString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (h *Host) drawStatus() {
	w, ht := h.screen.Size()
	if ht == 0 {
		return
	}
	y := ht - 1
	for x := 0; x < w; x++ {
		h.screen.SetContent(x, y, ' ', nil, h.styles.Status)
	}

	focus := "no focus"
	if _, r := h.ctrl.Focused(); r != nil {
		focus = "focus: " + label(r)
	}
	text := focus
	if h.status != "" {
		text = h.status + " | " + focus
	}
	h.putString(0, y, runewidth.Truncate(text, w, "…"), h.styles.Status)
}
