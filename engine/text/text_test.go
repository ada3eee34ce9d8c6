package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/hubastard/sprig/engine/gfx"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestBuiltinFamilies(t *testing.T) {
	t.Parallel()

	f, err := NewFonts()
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Go", "Go Bold", "Go Mono"}, f.Families())
	require.True(t, f.Has("go mono"))
	require.False(t, f.Has("Arial"))
}

func TestUnknownFamilyFallsBackToDefault(t *testing.T) {
	t.Parallel()

	f, err := NewFonts()
	require.NoError(t, err)
	defer f.Close()

	arial, err := f.Face(gfx.Font{Family: "Arial", Size: 24})
	require.NoError(t, err)
	goFace, err := f.Face(gfx.Font{Family: "Go", Size: 24})
	require.NoError(t, err)
	require.Same(t, goFace, arial)
}

func TestRegisterRejectsGarbage(t *testing.T) {
	t.Parallel()

	f, err := NewFonts()
	require.NoError(t, err)
	require.Error(t, f.Register("Broken", []byte("not a font")))
	require.Error(t, f.Register("  ", gomono.TTF))
	require.NoError(t, f.Register("Mono", gomono.TTF))
	require.True(t, f.Has("mono"))
}

func TestMeasureTextScalesWithSizeAndLines(t *testing.T) {
	t.Parallel()

	f, err := NewFonts()
	require.NoError(t, err)
	small, err := f.Face(gfx.Font{Size: 12})
	require.NoError(t, err)
	large, err := f.Face(gfx.Font{Size: 24})
	require.NoError(t, err)

	sw, sh := MeasureText(small, "Press Me!")
	lw, lh := MeasureText(large, "Press Me!")
	require.Greater(t, sw, float32(0))
	require.Greater(t, lw, sw)
	require.Greater(t, lh, sh)

	_, twoLines := MeasureText(small, "a\nb")
	require.InDelta(t, 2*sh, twoLines, 0.01)

	w, _ := MeasureText(small, "")
	require.Zero(t, w)
}

func TestDrawTextMarksPixels(t *testing.T) {
	t.Parallel()

	f, err := NewFonts()
	require.NoError(t, err)
	face, err := f.Face(gfx.Font{Size: 24})
	require.NoError(t, err)

	dst := image.NewRGBA(image.Rect(0, 0, 120, 40))
	DrawText(dst, face, 4, 4, "Hi", color.NRGBA{A: 255})

	painted := 0
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted++
		}
	}
	require.Positive(t, painted)
}
