package main

import (
	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/logger"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/ui"
)

type rootFlags struct {
	scene    string
	logLevel string
	console  bool
	logFile  string
	title    string
	width    int
	height   int
	vsync    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sandbox",
		Short:         "Run a sprig widget scene in a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.scene, "scene", "", "Scene YAML file (built-in example when empty)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.console, "console", false, "Human-readable log output on stderr")
	pf.StringVar(&flags.logFile, "log-file", "", "Also write JSON logs to this rotating file")
	pf.StringVar(&flags.title, "title", "", "Override the window title")
	pf.IntVar(&flags.width, "width", 0, "Override the window width")
	pf.IntVar(&flags.height, "height", 0, "Override the window height")
	cmd.Flags().BoolVar(&flags.vsync, "vsync", true, "Wait for vertical sync when presenting")

	cmd.AddCommand(newDumpCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))

	return cmd
}

func (f *rootFlags) newLogger() (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: f.console,
		File:          f.logFile,
	})
}

// loadScene reads --scene (or the built-in scene) and applies window overrides.
func (f *rootFlags) loadScene(cmd *cobra.Command) (*scene.Scene, error) {
	fs := cmd.Flags()
	s := scene.Default()
	if f.scene != "" {
		var err error
		if s, err = scene.Load(f.scene); err != nil {
			return nil, err
		}
	}
	if fs.Changed("title") {
		s.Window.Title = f.title
	}
	if fs.Changed("width") {
		s.Window.Width = f.width
	}
	if fs.Changed("height") {
		s.Window.Height = f.height
	}
	if fs.Changed("vsync") {
		s.Window.VSync = f.vsync
	}
	return s, scene.Validate(s)
}

// logClicks reports every click with the button's id.
func logClicks(log *logger.Logger) ui.ButtonCallback {
	return func(b *ui.Button, ev ui.ButtonEvent) {
		if ev.Kind != ui.Click {
			return
		}
		log.WithFields(map[string]any{
			"id":    b.Node().ID(),
			"label": b.Label,
			"x":     ev.Pos.X,
			"y":     ev.Pos.Y,
		}).Info("button pressed")
	}
}

// buildScene populates ctx from s with click logging on every button.
func buildScene(s *scene.Scene, ctx *ui.Context, fonts *text.Fonts, log *logger.Logger) error {
	return s.Build(ctx, fonts, logClicks(log))
}
