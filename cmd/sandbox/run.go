package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/platform"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/ui"
)

// glWindow owns the presenter so it is torn down while the GL context is alive.
type glWindow struct {
	*platform.GLFWWindow
	presenter *glbackend.Presenter
}

func (w *glWindow) present(frame *image.RGBA) error {
	if err := w.presenter.Present(frame); err != nil {
		return err
	}
	w.SwapBuffers()
	return nil
}

func (w *glWindow) Destroy() {
	w.presenter.Shutdown()
	w.GLFWWindow.Destroy()
}

func runWindow(cmd *cobra.Command, flags *rootFlags) error {
	log, err := flags.newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	s, err := flags.loadScene(cmd)
	if err != nil {
		return err
	}

	fonts, err := text.NewFonts()
	if err != nil {
		return err
	}
	surface := raster.NewSurface(fonts, nil)
	ctx := ui.New(surface, log)
	if err := buildScene(s, ctx, fonts, log); err != nil {
		return err
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		win, err := platform.NewGLFWWindow(cfg, log)
		if err != nil {
			return nil, err
		}
		presenter, err := glbackend.NewPresenter()
		if err != nil {
			win.Destroy()
			return nil, fmt.Errorf("gl presenter: %w", err)
		}
		w := &glWindow{GLFWWindow: win, presenter: presenter}
		surface.SetSink(w.present)
		return w, nil
	}

	if err := ctx.Run(s.Config(), newWindow); err != nil {
		log.Error(err, "run failed")
		return err
	}
	return nil
}
