package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/platform/headless"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/ui"
)

type snapshotFlags struct {
	out    string
	frames int
}

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	sf := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the scene off-screen and write the last frame as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, flags, sf)
		},
	}

	cmd.Flags().StringVarP(&sf.out, "out", "o", "frame.png", "Output PNG path")
	cmd.Flags().IntVar(&sf.frames, "frames", 1, "Frames to render before writing")

	return cmd
}

func runSnapshot(cmd *cobra.Command, flags *rootFlags, sf *snapshotFlags) error {
	if sf.frames < 1 {
		return errors.New("--frames must be at least 1")
	}
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

	err = ctx.Run(s.Config(), func(cfg core.Config) (core.Window, error) {
		w := headless.New(cfg)
		w.Script = func(w *headless.Window, poll int) {
			if poll >= sf.frames {
				w.RequestClose()
			}
		}
		return w, nil
	})
	if err != nil {
		return err
	}

	if err := assets.WritePNG(sf.out, surface.Front()); err != nil {
		return err
	}
	log.WithFields(map[string]any{"path": sf.out, "frames": ctx.Frames()}).Info("snapshot written")
	fmt.Fprintln(cmd.OutOrStdout(), sf.out)
	return nil
}
