package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string
	opts := &convertOptions{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "vid2gif [input]",
		Short: "Convert video files into looping GIFs",
		Long: `vid2gif converts video files into looping GIF images suitable for
email embedding. The heavy lifting (scaling, frame timing, palette
generation, GIF encoding) is delegated to ffmpeg; vid2gif resolves
inputs, derives output paths, and drives one ffmpeg invocation per file.

Input may be a single video, a directory of videos, or a batch file
(-b) listing one path per line. Without arguments on a terminal,
vid2gif walks through the parameters interactively.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	registerConvertFlags(rootCmd, opts)

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func registerConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output GIF file or directory (defaults to input name with .gif extension)")
	flags.IntVarP(&opts.width, "width", "w", 0, "Width of the output GIF in pixels (aspect ratio is preserved, 0 keeps source width)")
	flags.IntVarP(&opts.fps, "fps", "f", 10, "Frames per second")
	flags.IntVarP(&opts.quality, "quality", "q", 90, "Palette quality (1-100)")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Process directories recursively")
	flags.BoolVar(&opts.noLoop, "no-loop", false, "Disable infinite looping")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Run in interactive mode")
	flags.StringVarP(&opts.batchFile, "batch", "b", "", "Batch file listing videos to convert, one per line (# comments)")
	flags.Float64VarP(&opts.speed, "speed", "s", 1.0, "Speed multiplier (>1 speeds up, <1 slows down)")
}
