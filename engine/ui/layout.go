package ui

import (
	"fmt"
	"strings"
)

type LayoutMode int

const (
	// LayoutNone leaves authored geometry untouched.
	LayoutNone LayoutMode = iota
	// LayoutHorizontalFill splits the surface width into equal slots, one per
	// widget, with a 10px margin on each side of every slot.
	LayoutHorizontalFill
)

// Horizontal margin on each side of a HorizontalFill slot.
const fillMargin = 10

func (m LayoutMode) String() string {
	switch m {
	case LayoutNone:
		return "None"
	case LayoutHorizontalFill:
		return "HorizontalFill"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

// ParseLayoutMode accepts the String form, case-insensitively. Empty means None.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LayoutNone, nil
	case "horizontalfill", "horizontal_fill", "horizontal-fill":
		return LayoutHorizontalFill, nil
	}
	return LayoutNone, fmt.Errorf("unknown layout mode %q", s)
}

// ApplyLayout runs one layout pass over every group in key order.
func ApplyLayout(r *Registry, surfaceWidth int) {
	r.Each(func(g *LayoutGroup) {
		switch g.mode {
		case LayoutHorizontalFill:
			layoutHorizontalFill(g.widgets, surfaceWidth)
		}
	})
}

// layoutHorizontalFill only sets X and W.
func layoutHorizontalFill(ws []Widget, surfaceWidth int) {
	n := len(ws)
	if n == 0 {
		return
	}
	slot := surfaceWidth / n
	for i, w := range ws {
		b := w.Node()
		b.bounds.X = fillMargin + slot*i
		b.bounds.W = slot - 2*fillMargin
	}
}
