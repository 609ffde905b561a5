package convert

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Job is the parameter set for one input-to-output GIF conversion. Build it,
// validate it, convert it, discard it; jobs carry no state across files.
type Job struct {
	InputPath  string
	OutputPath string
	// Width scales the GIF with preserved aspect ratio; 0 keeps the source width.
	Width int
	FPS   int
	// Quality is the palette size handed to ffmpeg palettegen (1-100).
	Quality int
	// Speed is the playback multiplier: >1 speeds up, <1 slows down.
	Speed float64
	// Loop false renders a GIF that plays once.
	Loop bool
}

// Validate rejects unusable parameters before any subprocess is spawned.
func (j Job) Validate() error {
	if strings.TrimSpace(j.InputPath) == "" {
		return wrap(ErrValidation, "job", "input path is empty", nil)
	}
	if strings.TrimSpace(j.OutputPath) == "" {
		return wrap(ErrValidation, "job", "output path is empty", nil)
	}
	if j.Quality < 1 || j.Quality > 100 {
		return wrap(ErrValidation, "job", "quality must be between 1 and 100, got "+strconv.Itoa(j.Quality), nil)
	}
	if j.FPS <= 0 {
		return wrap(ErrValidation, "job", "fps must be positive, got "+strconv.Itoa(j.FPS), nil)
	}
	if j.Speed <= 0 {
		return wrap(ErrValidation, "job", "speed must be positive", nil)
	}
	if j.Width < 0 {
		return wrap(ErrValidation, "job", "width must not be negative", nil)
	}
	return nil
}

// DefaultOutputPath maps an input video path to its default GIF path: same
// directory, same basename, .gif extension.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".gif"
}

// filters builds the ffmpeg filter chain for this job. The palette pass uses
// the same chain minus the fps filter so palettegen sees every frame the
// render pass will sample from.
func (j Job) filters(includeFPS bool) []string {
	var filters []string
	if j.Speed != 1.0 {
		if j.Speed > 1.0 {
			filters = append(filters, "setpts=PTS/"+formatFloat(j.Speed))
		} else {
			filters = append(filters, "setpts=PTS*"+formatFloat(1/j.Speed))
		}
	}
	if j.Width > 0 {
		filters = append(filters, "scale="+strconv.Itoa(j.Width)+":-1:flags=lanczos")
	}
	if includeFPS {
		filters = append(filters, "fps="+strconv.Itoa(j.FPS))
	}
	return filters
}

// PaletteArgs builds the argv for the palette generation pass.
func (j Job) PaletteArgs(palettePath string) []string {
	args := []string{"-hide_banner", "-loglevel", "error", "-i", j.InputPath}

	palettegen := "palettegen=max_colors=" + strconv.Itoa(j.Quality)
	filter := palettegen
	if filters := j.filters(false); len(filters) > 0 {
		filter = strings.Join(filters, ",") + "," + palettegen
	}

	return append(args, "-vf", filter, "-y", palettePath)
}

// RenderArgs builds the argv for the GIF render pass using the palette
// produced by PaletteArgs.
func (j Job) RenderArgs(palettePath string) []string {
	args := []string{"-hide_banner", "-loglevel", "error", "-i", j.InputPath, "-i", palettePath}

	lavfi := "[0:v][1:v]paletteuse"
	if filters := j.filters(true); len(filters) > 0 {
		lavfi = strings.Join(filters, ",") + "[x];[x][1:v]paletteuse"
	}

	loop := "0" // infinite
	if !j.Loop {
		loop = "1" // play once
	}

	return append(args, "-lavfi", lavfi, "-loop", loop, "-y", j.OutputPath)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
