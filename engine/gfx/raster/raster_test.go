package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/text"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, sink Sink) *Surface {
	t.Helper()
	fonts, err := text.NewFonts()
	require.NoError(t, err)
	return NewSurface(fonts, sink)
}

func pixel(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestFillRectOpaque(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(20, 20)
	require.NoError(t, err)

	b.FillRect(gfx.Rect{X: 2, Y: 3, W: 4, H: 5}, colors.Red)
	img := b.(*Buffer).Image()
	require.Equal(t, color.RGBA{R: 255, A: 255}, pixel(img, 2, 3))
	require.Equal(t, color.RGBA{R: 255, A: 255}, pixel(img, 5, 7))
	require.Equal(t, color.RGBA{}, pixel(img, 6, 7))
	require.Equal(t, color.RGBA{}, pixel(img, 5, 8))
}

func TestFillRectSkipsDegenerateAndTransparent(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(10, 10)
	require.NoError(t, err)

	b.FillRect(gfx.Rect{X: 5, Y: 5, W: -3, H: 4}, colors.Red)
	b.FillRect(gfx.Rect{X: 0, Y: 0, W: 10, H: 10}, colors.Transparent)
	for _, v := range b.(*Buffer).Image().Pix {
		require.Zero(t, v)
	}
}

func TestFillRectBlendsTranslucent(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(4, 4)
	require.NoError(t, err)

	b.FillRect(gfx.Rect{W: 4, H: 4}, colors.White)
	b.FillRect(gfx.Rect{W: 4, H: 4}, colors.Black.WithAlpha(128))
	px := pixel(b.(*Buffer).Image(), 1, 1)
	require.Equal(t, uint8(255), px.A)
	require.InDelta(t, 127, int(px.R), 2)
}

func TestStrokeRectOutline(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(12, 12)
	require.NoError(t, err)

	b.StrokeRect(gfx.Rect{X: 2, Y: 2, W: 5, H: 5}, colors.Blue)
	img := b.(*Buffer).Image()
	blue := color.RGBA{B: 255, A: 255}
	for i := 2; i <= 7; i++ {
		require.Equal(t, blue, pixel(img, i, 2), "top %d", i)
		require.Equal(t, blue, pixel(img, i, 7), "bottom %d", i)
		require.Equal(t, blue, pixel(img, 2, i), "left %d", i)
		require.Equal(t, blue, pixel(img, 7, i), "right %d", i)
	}
	require.Equal(t, color.RGBA{}, pixel(img, 4, 4))
	require.Equal(t, color.RGBA{}, pixel(img, 8, 8))
}

func TestPresentCopiesToFrontAndCallsSink(t *testing.T) {
	t.Parallel()

	var seen *image.RGBA
	calls := 0
	s := newSurface(t, func(frame *image.RGBA) error {
		calls++
		seen = frame
		return nil
	})

	b, err := s.Acquire(8, 6)
	require.NoError(t, err)
	b.FillRect(gfx.Rect{W: 8, H: 6}, colors.Green)

	// front untouched until present
	require.Equal(t, 0, s.Front().Rect.Dx())

	require.NoError(t, s.Present(b))
	s.Release(b)

	require.Equal(t, 1, calls)
	require.Equal(t, 1, s.Presents())
	require.Same(t, s.Front(), seen)
	require.Equal(t, image.Rect(0, 0, 8, 6), s.Front().Rect)
	require.Equal(t, color.RGBA{G: 255, A: 255}, pixel(s.Front(), 7, 5))
}

func TestAcquireLifecycle(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(4, 4)
	require.NoError(t, err)

	_, err = s.Acquire(4, 4)
	require.ErrorIs(t, err, ErrBufferInUse)

	s.Release(b)
	again, err := s.Acquire(4, 4)
	require.NoError(t, err)
	require.Same(t, b, again)
	s.Release(again)

	resized, err := s.Acquire(6, 2)
	require.NoError(t, err)
	w, h := resized.Size()
	require.Equal(t, 6, w)
	require.Equal(t, 2, h)
	s.Release(resized)

	require.ErrorIs(t, s.Present(resized), ErrForeignBuf)

	_, err = s.Acquire(-1, 3)
	require.Error(t, err)

	require.NoError(t, s.Close())
	_, err = s.Acquire(4, 4)
	require.ErrorIs(t, err, ErrSurfaceClosed)
}

func TestSinkErrorIsReturned(t *testing.T) {
	t.Parallel()

	boom := errors.New("swap failed")
	s := newSurface(t, func(*image.RGBA) error { return boom })
	b, err := s.Acquire(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, s.Present(b), boom)
}

func TestTextDrawsInsideBuffer(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	b, err := s.Acquire(200, 50)
	require.NoError(t, err)

	f := gfx.Font{Family: "Arial", Size: 24}
	w, h := b.MeasureText("Press Me!", f)
	require.Positive(t, w)
	require.Positive(t, h)

	b.DrawText("Press Me!", f, 10, 10, colors.Black)
	painted := false
	for i := 3; i < len(b.(*Buffer).Image().Pix); i += 4 {
		if b.(*Buffer).Image().Pix[i] != 0 {
			painted = true
			break
		}
	}
	require.True(t, painted)
}

func TestReusedBufferStartsCleared(t *testing.T) {
	t.Parallel()

	s := newSurface(t, nil)
	translucent := colors.ARGB(128, 255, 0, 0)

	var first color.RGBA
	for frame := 0; frame < 6; frame++ {
		b, err := s.Acquire(4, 4)
		require.NoError(t, err)
		if frame == 0 {
			b.FillRect(gfx.Rect{X: 2, Y: 2, W: 1, H: 1}, colors.Blue)
		} else {
			require.Equal(t, color.RGBA{}, pixel(b.(*Buffer).Image(), 2, 2))
		}
		b.FillRect(gfx.Rect{W: 2, H: 2}, translucent)
		require.NoError(t, s.Present(b))
		s.Release(b)

		if frame == 0 {
			first = pixel(s.Front(), 1, 1)
			require.NotEqual(t, color.RGBA{}, first)
		}
		require.Equal(t, first, pixel(s.Front(), 1, 1), "frame %d", frame)
	}
}
