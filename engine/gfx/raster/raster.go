// Package raster is a CPU implementation of gfx.Surface. Frames are painted into an
// off-screen *image.RGBA and presented by copying them onto a front image in one step,
// after which an optional sink (for example a GL presenter) shows the front image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/text"
)

// Sink receives every presented frame. The image is only valid during the call.
type Sink func(frame *image.RGBA) error

var (
	ErrBufferInUse   = errors.New("raster: back buffer already acquired")
	ErrForeignBuf    = errors.New("raster: buffer was not acquired from this surface")
	ErrSurfaceClosed = errors.New("raster: surface closed")
)

// Surface keeps one reusable back buffer and a front image.
type Surface struct {
	fonts  *text.Fonts
	sink   Sink
	back   *Buffer
	front  *image.RGBA
	held   bool
	closed bool

	presents int
}

// NewSurface builds a surface drawing text with fonts. sink may be nil.
func NewSurface(fonts *text.Fonts, sink Sink) *Surface {
	return &Surface{fonts: fonts, sink: sink, front: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

// SetSink replaces the presentation target.
func (s *Surface) SetSink(sink Sink) { s.sink = sink }

func (s *Surface) Acquire(w, h int) (gfx.Buffer, error) {
	if s.closed {
		return nil, ErrSurfaceClosed
	}
	if s.held {
		return nil, ErrBufferInUse
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("raster: invalid buffer size %dx%d", w, h)
	}
	if s.back == nil || s.back.img.Rect.Dx() != w || s.back.img.Rect.Dy() != h {
		s.back = &Buffer{img: image.NewRGBA(image.Rect(0, 0, w, h)), fonts: s.fonts}
	} else {
		// every frame starts from transparent black
		clear(s.back.img.Pix)
	}
	s.held = true
	return s.back, nil
}

func (s *Surface) Present(b gfx.Buffer) error {
	buf, ok := b.(*Buffer)
	if !ok || buf != s.back || !s.held {
		return ErrForeignBuf
	}
	if buf.err != nil {
		return buf.err
	}
	if s.front.Rect != buf.img.Rect {
		s.front = image.NewRGBA(buf.img.Rect)
	}
	copy(s.front.Pix, buf.img.Pix)
	s.presents++
	if s.sink != nil {
		return s.sink(s.front)
	}
	return nil
}

func (s *Surface) Release(b gfx.Buffer) {
	if buf, ok := b.(*Buffer); ok && buf == s.back {
		buf.err = nil
		s.held = false
	}
}

// Front is the last presented frame.
func (s *Surface) Front() *image.RGBA { return s.front }

// Presents counts completed presents.
func (s *Surface) Presents() int { return s.presents }

func (s *Surface) Close() error {
	s.closed = true
	s.back = nil
	if s.fonts != nil {
		s.fonts.Close()
	}
	return nil
}

// Buffer is the off-screen canvas handed out by Surface.
type Buffer struct {
	img   *image.RGBA
	fonts *text.Fonts
	err   error // first font error, reported at present
}

func (b *Buffer) Size() (int, int) { return b.img.Rect.Dx(), b.img.Rect.Dy() }

// Image exposes the pixels being painted.
func (b *Buffer) Image() *image.RGBA { return b.img }

func (b *Buffer) FillRect(r gfx.Rect, c colors.Color) {
	if r.Empty() || c.A == 0 {
		return
	}
	draw.Draw(b.img, r.Image(), image.NewUniform(c.NRGBA()), image.Point{}, op(c))
}

func (b *Buffer) StrokeRect(r gfx.Rect, c colors.Color) {
	if r.W < 0 || r.H < 0 || c.A == 0 {
		return
	}
	src := image.NewUniform(c.NRGBA())
	mode := op(c)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	draw.Draw(b.img, image.Rect(x0, y0, x1+1, y0+1), src, image.Point{}, mode) // top
	if y1 != y0 {
		draw.Draw(b.img, image.Rect(x0, y1, x1+1, y1+1), src, image.Point{}, mode) // bottom
	}
	if y1-y0 > 1 {
		draw.Draw(b.img, image.Rect(x0, y0+1, x0+1, y1), src, image.Point{}, mode) // left
		if x1 != x0 {
			draw.Draw(b.img, image.Rect(x1, y0+1, x1+1, y1), src, image.Point{}, mode) // right
		}
	}
}

func (b *Buffer) MeasureText(s string, f gfx.Font) (float32, float32) {
	if b.fonts == nil {
		return 0, 0
	}
	face, err := b.fonts.Face(f)
	if err != nil {
		b.fail(err)
		return 0, 0
	}
	return text.MeasureText(face, s)
}

func (b *Buffer) DrawText(s string, f gfx.Font, x, y float32, c colors.Color) {
	if b.fonts == nil || s == "" || c.A == 0 {
		return
	}
	face, err := b.fonts.Face(f)
	if err != nil {
		b.fail(err)
		return
	}
	text.DrawText(b.img, face, x, y, s, c.NRGBA())
}

func (b *Buffer) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func op(c colors.Color) draw.Op {
	if c.A == 255 {
		return draw.Src
	}
	return draw.Over
}
