// Package headless provides a scripted core.Window with no native surface. Tests
// and the snapshot command drive it by queueing pointer and window events.
package headless

import (
	"image"

	"github.com/hubastard/sprig/engine/core"
)

// Window implements core.Window. Queued events are delivered on PollEvents, and
// pointer queries reflect the events delivered so far.
type Window struct {
	in        *core.Input
	w, h      int
	title     string
	queue     []core.Event
	onEv      func(core.Event)
	close     bool
	destroyed bool
	polls     int

	// Script, when set, runs at the start of every PollEvents with the zero-based
	// poll index. It typically queues events or calls RequestClose.
	Script func(w *Window, poll int)
}

func New(cfg core.Config) *Window {
	return &Window{in: core.NewInput(), w: cfg.Width, h: cfg.Height, title: cfg.Title}
}

// MoveCursor queues a pointer move to (x, y).
func (w *Window) MoveCursor(x, y int) { w.Queue(core.EventMouseMove{X: x, Y: y}) }

// Press queues a primary button down edge.
func (w *Window) Press() { w.Queue(core.EventMouseButton{Down: true}) }

// Release queues a primary button up edge.
func (w *Window) Release() { w.Queue(core.EventMouseButton{Down: false}) }

// Resize queues a framebuffer resize.
func (w *Window) Resize(width, height int) { w.Queue(core.EventResize{W: width, H: height}) }

// CloseRequest queues the close notification a user closing the window would send.
func (w *Window) CloseRequest() { w.Queue(core.EventCloseRequested{}) }

func (w *Window) Queue(ev core.Event) { w.queue = append(w.queue, ev) }

func (w *Window) PollEvents() {
	if w.Script != nil {
		w.Script(w, w.polls)
	}
	w.polls++
	for len(w.queue) > 0 {
		ev := w.queue[0]
		w.queue = w.queue[1:]
		w.in.Handle(ev)
		if r, ok := ev.(core.EventResize); ok {
			w.w, w.h = r.W, r.H
		}
		if w.onEv != nil {
			w.onEv(ev)
		}
	}
}

func (w *Window) ShouldClose() bool                    { return w.close }
func (w *Window) RequestClose()                        { w.close = true }
func (w *Window) FramebufferSize() (int, int)          { return w.w, w.h }
func (w *Window) CursorPos() image.Point               { return w.in.CursorPos() }
func (w *Window) PrimaryDown() bool                    { return w.in.PrimaryDown() }
func (w *Window) SetTitle(t string)                    { w.title = t }
func (w *Window) Title() string                        { return w.title }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }
func (w *Window) Destroy()                             { w.destroyed = true }
func (w *Window) Destroyed() bool                      { return w.destroyed }
func (w *Window) Polls() int                           { return w.polls }
