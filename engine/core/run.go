package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/sprig/engine/logger"
)

// Run wires the platform window and executes the main loop until the window
// should close. Every host event is forwarded to app as it arrives; after each
// poll the loop sends one EventPaint.
func Run(app App, cfg Config, log *logger.Logger, newWindow func(Config) (Window, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	eng := &Engine{Window: win, Config: cfg, Log: log, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		if r, ok := ev.(EventResize); ok && (r.W < 1 || r.H < 1) {
			// minimized; keep the last size
			return
		}
		app.OnEvent(eng, ev)
	})

	if err := app.OnStart(eng); err != nil {
		// release whatever the app acquired before failing
		app.OnShutdown(eng)
		return err
	}

	w, h := win.FramebufferSize()
	app.OnEvent(eng, EventResize{W: w, H: h})

	for !win.ShouldClose() {
		win.PollEvents()
		if win.ShouldClose() {
			break
		}
		app.OnEvent(eng, EventPaint{})
		eng.frames++
	}

	app.OnShutdown(eng)
	log.WithFields(map[string]any{"frames": eng.frames, "uptime": eng.Uptime().String()}).Info("engine exit")
	return nil
}
