package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) ARGB color with 8 bits per channel.
type Color struct {
	A, R, G, B uint8
}

// ARGB builds a Color from its four channels, alpha first.
func ARGB(a, r, g, b uint8) Color { return Color{A: a, R: r, G: g, B: b} }

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color { return Color{A: 255, R: r, G: g, B: b} }

var (
	Transparent = Color{}
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Magenta     = RGB(255, 0, 255)
	Cyan        = RGB(0, 255, 255)
	LightGray   = RGB(200, 200, 200)
)

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts to the image/color type used by the raster backend.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Floats returns RGBA in [0..1], the layout GL clear colors expect.
func (c Color) Floats() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Parse accepts "#RRGGBB" (opaque) or "#AARRGGBB". The leading '#' is optional.
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParse is Parse for package-level literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
