package ui

import (
	"fmt"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
)

// Compositor paints the registry into an off-screen buffer and presents it in
// one step. Nothing is drawn to the visible target before Present.
type Compositor struct {
	surface gfx.Surface
	frames  int
}

func NewCompositor(s gfx.Surface) *Compositor {
	return &Compositor{surface: s}
}

// Frames counts successful presents.
func (c *Compositor) Frames() int { return c.frames }

// Render draws bg and then every widget in (group key, insertion) order.
func (c *Compositor) Render(r *Registry, bg colors.Color, w, h int) error {
	buf, err := c.surface.Acquire(w, h)
	if err != nil {
		return fmt.Errorf("acquire %dx%d buffer: %w", w, h, err)
	}
	defer c.surface.Release(buf)

	buf.FillRect(gfx.Rect{W: w, H: h}, bg)
	r.Walk(func(wd Widget) {
		wd.Draw(buf)
	})

	if err := c.surface.Present(buf); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	c.frames++
	return nil
}

func (c *Compositor) Close() error {
	return c.surface.Close()
}
