// Package gfx declares the 2-D drawing backend the widget engine paints through.
//
// The engine only ever measures text, fills and strokes rectangles and draws text
// at a point. Everything else (rasterization, font shaping, presenting to a window)
// belongs to a backend such as gfx/raster.
package gfx

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
)

// DefaultFontFamily is used when a widget names no family or an unknown one.
const DefaultFontFamily = "Go"

// Rect is an integer rectangle: top-left corner plus extent, in surface pixels.
// Unlike image.Rectangle it keeps negative extents as given.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. Edges are half-open: the right and
// bottom edges are outside.
func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Outset grows r by n pixels on every side (shrinks for negative n).
func (r Rect) Outset(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Image converts to an image.Rectangle. Only meaningful for non-empty rects.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Font selects a face by family name and pixel size.
type Font struct {
	Family string
	Size   float32
}

// Canvas is the set of drawing commands widgets issue.
type Canvas interface {
	FillRect(r Rect, c colors.Color)
	// StrokeRect draws a 1px outline whose right and bottom lines sit at X+W and Y+H.
	StrokeRect(r Rect, c colors.Color)
	MeasureText(s string, f Font) (w, h float32)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, f Font, x, y float32, c colors.Color)
}

// Buffer is an off-screen canvas of a fixed size.
type Buffer interface {
	Canvas
	Size() (w, h int)
}

// Surface hands out off-screen buffers and presents them to the visible target.
type Surface interface {
	// Acquire returns a buffer sized w x h, cleared to transparent black.
	Acquire(w, h int) (Buffer, error)
	// Present copies a completed buffer to the visible target in one step.
	Present(b Buffer) error
	// Release gives the buffer back. The buffer must not be used afterwards.
	Release(b Buffer)
	Close() error
}
