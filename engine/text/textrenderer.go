package text

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the baseline-to-baseline distance of face in pixels.
func LineHeight(face font.Face) float32 {
	return fromFixed(face.Metrics().Height)
}

// BaselineToTop is the ascent of face in pixels.
func BaselineToTop(face font.Face) float32 {
	return fromFixed(face.Metrics().Ascent)
}

// MeasureText returns the extent of s. Each '\n' starts a new line.
func MeasureText(face font.Face, s string) (width, height float32) {
	lineH := LineHeight(face)
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := fromFixed(font.MeasureString(face, line)); w > width {
			width = w
		}
	}
	return width, lineH * float32(len(lines))
}

// DrawText draws s with its top-left corner at (x, y). Positive Y goes down.
func DrawText(dst draw.Image, face font.Face, x, y float32, s string, col color.Color) {
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	baseY := toFixed(y) + m.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: baseY}
		d.DrawString(line)
		baseY += m.Height
	}
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }
