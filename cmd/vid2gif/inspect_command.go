package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vid2gif/internal/media/ffprobe"
)

func newInspectCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <video>",
		Short: "Show container and stream details for a video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, args[0])
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", result.Format.Filename},
				{"Container", result.Format.FormatName},
				{"Duration", formatDuration(result.DurationSeconds())},
			}
			if stream, ok := result.VideoStream(); ok {
				rows = append(rows,
					[]string{"Dimensions", fmt.Sprintf("%dx%d", stream.Width, stream.Height)},
					[]string{"Video codec", stream.CodecName},
					[]string{"Frame rate", formatFrameRate(result.FrameRate())},
				)
			} else {
				rows = append(rows, []string{"Video stream", "none"})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Property", "Value"}, rows))
			return nil
		},
	}
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "unknown"
	}
	return strconv.FormatFloat(seconds, 'f', 2, 64) + "s"
}

func formatFrameRate(rate float64) string {
	if rate <= 0 {
		return "unknown"
	}
	return strconv.FormatFloat(rate, 'f', 2, 64) + " fps"
}
