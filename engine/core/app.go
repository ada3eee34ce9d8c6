package core

import (
	"image"
	"time"

	"github.com/hubastard/sprig/engine/logger"
)

// App defines the application hooks driven by Run.
type App interface {
	OnStart(e *Engine) error     // called once after the window exists
	OnEvent(e *Engine, ev Event) // every host notification, in arrival order
	OnShutdown(e *Engine)        // before the window is destroyed
}

// Engine exposes core services to the App.
type Engine struct {
	Window Window
	Config Config
	Log    *logger.Logger
	start  time.Time
	frames int
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frames counts completed loop iterations.
func (e *Engine) Frames() int { return e.frames }

// Window abstraction over the host surface.
type Window interface {
	PollEvents()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	// CursorPos is the pointer position in framebuffer pixels.
	CursorPos() image.Point
	PrimaryDown() bool
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventPaint asks the app to render a frame.
type EventPaint struct{}

func (EventPaint) isEvent() {}

type EventMouseMove struct{ X, Y int }

func (EventMouseMove) isEvent() {}

// EventMouseButton reports a primary button edge.
type EventMouseButton struct{ Down bool }

func (EventMouseButton) isEvent() {}

// Config for the engine run.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}
