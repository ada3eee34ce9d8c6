package main

import (
	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/gfx/raster"
	"github.com/hubastard/sprig/engine/logger"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/ui"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the scene's layout groups and widget ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.loadScene(cmd)
			if err != nil {
				return err
			}
			fonts, err := text.NewFonts()
			if err != nil {
				return err
			}
			defer fonts.Close()

			ctx := ui.New(raster.NewSurface(fonts, nil), logger.Nop())
			if err := s.Build(ctx, fonts, nil); err != nil {
				return err
			}
			return ctx.Dump(cmd.OutOrStdout())
		},
	}
}
