package ui_test

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/ui"
)

type opKind int

const (
	opFill opKind = iota
	opStroke
	opText
)

type drawOp struct {
	kind  opKind
	rect  gfx.Rect
	color colors.Color
	text  string
	font  gfx.Font
	x, y  float32
}

// recordingCanvas measures every rune as 10x20 pixels.
type recordingCanvas struct {
	w, h int
	ops  []drawOp
}

func (c *recordingCanvas) FillRect(r gfx.Rect, col colors.Color) {
	c.ops = append(c.ops, drawOp{kind: opFill, rect: r, color: col})
}

func (c *recordingCanvas) StrokeRect(r gfx.Rect, col colors.Color) {
	c.ops = append(c.ops, drawOp{kind: opStroke, rect: r, color: col})
}

func (c *recordingCanvas) MeasureText(s string, f gfx.Font) (float32, float32) {
	return float32(10 * len([]rune(s))), 20
}

func (c *recordingCanvas) DrawText(s string, f gfx.Font, x, y float32, col colors.Color) {
	c.ops = append(c.ops, drawOp{kind: opText, text: s, font: f, x: x, y: y, color: col})
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

type recordingSurface struct {
	acquireErr error
	presentErr error

	acquired  int
	released  int
	presented [][]drawOp
	closed    bool
	held      *recordingCanvas
}

func (s *recordingSurface) Acquire(w, h int) (gfx.Buffer, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	s.acquired++
	s.held = &recordingCanvas{w: w, h: h}
	return s.held, nil
}

func (s *recordingSurface) Present(b gfx.Buffer) error {
	if s.presentErr != nil {
		return s.presentErr
	}
	c := b.(*recordingCanvas)
	s.presented = append(s.presented, append([]drawOp(nil), c.ops...))
	return nil
}

func (s *recordingSurface) Release(gfx.Buffer) {
	s.released++
	s.held = nil
}

func (s *recordingSurface) Close() error {
	s.closed = true
	return nil
}

func (s *recordingSurface) last() []drawOp {
	if len(s.presented) == 0 {
		return nil
	}
	return s.presented[len(s.presented)-1]
}

// pointer is a scripted ui.Pointer. When path is set, each CursorPos call
// returns its next entry and then sticks at the last one.
type pointer struct {
	pos  image.Point
	down bool
	path []image.Point
}

func (p *pointer) CursorPos() image.Point {
	if len(p.path) > 0 {
		p.pos = p.path[0]
		p.path = p.path[1:]
	}
	return p.pos
}

func (p *pointer) PrimaryDown() bool { return p.down }

func (p *pointer) move(x, y int) { p.pos = image.Pt(x, y) }

type firedEvent struct {
	id   int
	kind ui.EventKind
	pos  image.Point
}

type recorder struct {
	events []firedEvent
}

func (r *recorder) callback(b *ui.Button, ev ui.ButtonEvent) {
	r.events = append(r.events, firedEvent{id: b.Node().ID(), kind: ev.Kind, pos: ev.Pos})
}

func (r *recorder) kinds() []ui.EventKind {
	out := make([]ui.EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.kind)
	}
	return out
}

func (r *recorder) reset() { r.events = nil }
