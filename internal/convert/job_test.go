package convert_test

import (
	"errors"
	"strings"
	"testing"

	"vid2gif/internal/convert"
)

func baseJob() convert.Job {
	return convert.Job{
		InputPath:  "in/clip.mp4",
		OutputPath: "out/clip.gif",
		FPS:        10,
		Quality:    90,
		Speed:      1.0,
		Loop:       true,
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"clip.mp4", "clip.gif"},
		{"videos/holiday.webm", "videos/holiday.gif"},
		{"noext", "noext.gif"},
		{"dir.v1/movie.mkv", "dir.v1/movie.gif"},
	}
	for _, tc := range cases {
		if got := convert.DefaultOutputPath(tc.in); got != tc.want {
			t.Fatalf("DefaultOutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*convert.Job)
	}{
		{"empty input", func(j *convert.Job) { j.InputPath = "" }},
		{"empty output", func(j *convert.Job) { j.OutputPath = "" }},
		{"quality too low", func(j *convert.Job) { j.Quality = 0 }},
		{"quality too high", func(j *convert.Job) { j.Quality = 101 }},
		{"zero fps", func(j *convert.Job) { j.FPS = 0 }},
		{"negative speed", func(j *convert.Job) { j.Speed = -0.5 }},
		{"negative width", func(j *convert.Job) { j.Width = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := baseJob()
			tc.mutate(&job)
			err := job.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, convert.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsBoundaryQuality(t *testing.T) {
	for _, quality := range []int{1, 100} {
		job := baseJob()
		job.Quality = quality
		if err := job.Validate(); err != nil {
			t.Fatalf("quality %d should be valid: %v", quality, err)
		}
	}
}

func argValue(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestPaletteArgsOmitFPSFilter(t *testing.T) {
	job := baseJob()
	job.Width = 480
	job.Speed = 2.0
	job.Quality = 64

	args := job.PaletteArgs("palette.png")
	filter := argValue(t, args, "-vf")

	if strings.Contains(filter, "fps=") {
		t.Fatalf("palette pass must not sample fps: %q", filter)
	}
	if !strings.Contains(filter, "setpts=PTS/2") {
		t.Fatalf("expected speed filter, got %q", filter)
	}
	if !strings.Contains(filter, "scale=480:-1:flags=lanczos") {
		t.Fatalf("expected scale filter, got %q", filter)
	}
	if !strings.HasSuffix(filter, "palettegen=max_colors=64") {
		t.Fatalf("expected palettegen with quality, got %q", filter)
	}
	if args[len(args)-1] != "palette.png" {
		t.Fatalf("expected palette path as final arg: %v", args)
	}
}

func TestPaletteArgsWithoutFilters(t *testing.T) {
	job := baseJob()
	args := job.PaletteArgs("palette.png")
	if filter := argValue(t, args, "-vf"); filter != "palettegen=max_colors=90" {
		t.Fatalf("unexpected bare palette filter: %q", filter)
	}
}

func TestRenderArgsCarryFPSAndLoop(t *testing.T) {
	job := baseJob()
	job.FPS = 24

	args := job.RenderArgs("palette.png")
	lavfi := argValue(t, args, "-lavfi")

	if !strings.Contains(lavfi, "fps=24") {
		t.Fatalf("expected fps filter in render pass, got %q", lavfi)
	}
	if !strings.Contains(lavfi, "[x];[x][1:v]paletteuse") {
		t.Fatalf("expected paletteuse chain, got %q", lavfi)
	}
	if got := argValue(t, args, "-loop"); got != "0" {
		t.Fatalf("looping job should use -loop 0, got %q", got)
	}
}

func TestRenderArgsLoopDisabled(t *testing.T) {
	job := baseJob()
	job.Loop = false
	if got := argValue(t, job.RenderArgs("palette.png"), "-loop"); got != "1" {
		t.Fatalf("no-loop job should use -loop 1, got %q", got)
	}
}

func TestRenderArgsWithoutFiltersUsesBarePaletteuse(t *testing.T) {
	job := baseJob()
	job.FPS = 10

	args := job.RenderArgs("palette.png")
	lavfi := argValue(t, args, "-lavfi")
	// fps is always present, so the bare chain only appears with no filters at
	// all, which cannot happen through Validate; assert the chain shape instead.
	if !strings.HasPrefix(lavfi, "fps=10") {
		t.Fatalf("expected fps-led chain, got %q", lavfi)
	}
}

func TestSlowdownSpeedInvertsMultiplier(t *testing.T) {
	job := baseJob()
	job.Speed = 0.5

	filter := argValue(t, job.RenderArgs("palette.png"), "-lavfi")
	if !strings.Contains(filter, "setpts=PTS*2") {
		t.Fatalf("expected inverted multiplier for slowdown, got %q", filter)
	}
}

func TestSpeedAndFPSPassThroughUnchanged(t *testing.T) {
	job := baseJob()
	job.Speed = 3.5
	job.FPS = 18

	lavfi := argValue(t, job.RenderArgs("palette.png"), "-lavfi")
	if !strings.Contains(lavfi, "setpts=PTS/3.5") {
		t.Fatalf("speed not passed through: %q", lavfi)
	}
	if !strings.Contains(lavfi, "fps=18") {
		t.Fatalf("fps not passed through: %q", lavfi)
	}
}
