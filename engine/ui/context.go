package ui

import (
	"io"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/logger"
)

// Context owns the widget registry and drives the layout, interaction and render
// passes from host events. It implements core.App.
//
// Every host event triggers a layout and an interaction pass, so pointer events
// are resolved as often as the host reports them. EventPaint additionally
// renders a frame.
type Context struct {
	registry   *Registry
	compositor *Compositor
	background colors.Color
	width      int
	height     int
	passes     int
	log        *logger.Logger
	err        error
}

func New(surface gfx.Surface, log *logger.Logger) *Context {
	if log == nil {
		log = logger.Nop()
	}
	return &Context{
		registry:   NewRegistry(),
		compositor: NewCompositor(surface),
		background: colors.White,
		log:        log,
	}
}

// AddWidget stores a copy of w in group and returns the copy's id.
func (c *Context) AddWidget(w Widget, group int) int {
	return c.registry.Add(w, group)
}

func (c *Context) SetLayoutType(group int, mode LayoutMode) {
	c.registry.SetLayout(group, mode)
}

func (c *Context) MoveWidget(group, from, to int) bool {
	return c.registry.Move(group, from, to)
}

func (c *Context) ClearGroup(group int) {
	c.registry.Clear(group)
}

func (c *Context) Widget(group, id int) (Widget, bool) {
	return c.registry.Widget(group, id)
}

// SetBackground takes effect on the next render.
func (c *Context) SetBackground(col colors.Color) { c.background = col }
func (c *Context) Background() colors.Color       { return c.background }

func (c *Context) Registry() *Registry { return c.registry }

func (c *Context) Dump(w io.Writer) error { return c.registry.Dump(w) }

// Size is the surface size from the last resize.
func (c *Context) Size() (int, int) { return c.width, c.height }

// Passes counts interaction passes.
func (c *Context) Passes() int { return c.passes }

// Frames counts presented frames.
func (c *Context) Frames() int { return c.compositor.Frames() }

// Err is the render failure that stopped the loop, if any.
func (c *Context) Err() error { return c.err }

// Run opens a window through newWindow and blocks until it closes.
func (c *Context) Run(cfg core.Config, newWindow func(core.Config) (core.Window, error)) error {
	if err := core.Run(c, cfg, c.log, newWindow); err != nil {
		return err
	}
	return c.err
}

func (c *Context) OnStart(e *core.Engine) error {
	c.log.WithFields(map[string]any{
		"title":  e.Config.Title,
		"groups": c.registry.Len(),
	}).Info("ui start")
	return nil
}

func (c *Context) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventCloseRequested:
		e.Window.RequestClose()
		return
	case core.EventResize:
		c.width, c.height = ev.W, ev.H
		c.log.WithFields(map[string]any{"width": ev.W, "height": ev.H}).Debug("resize")
	}

	ApplyLayout(c.registry, c.width)
	Interact(c.registry, e.Window)
	c.passes++

	if _, ok := ev.(core.EventPaint); ok {
		c.paint(e)
	}
}

func (c *Context) paint(e *core.Engine) {
	if c.err != nil || c.width <= 0 || c.height <= 0 {
		return
	}
	// callbacks from the interaction pass may have changed modes or groups
	ApplyLayout(c.registry, c.width)
	if err := c.compositor.Render(c.registry, c.background, c.width, c.height); err != nil {
		c.err = err
		c.log.Error(err, "render failed")
		e.Window.RequestClose()
	}
}

func (c *Context) OnShutdown(e *core.Engine) {
	if err := c.compositor.Close(); err != nil {
		c.log.Error(err, "close surface")
	}
	c.log.WithFields(map[string]any{"frames": c.Frames(), "passes": c.passes}).Debug("ui shutdown")
}
