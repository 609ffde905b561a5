package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"vid2gif/internal/config"
	"vid2gif/internal/convert"
	"vid2gif/internal/deps"
	"vid2gif/internal/logging"
	"vid2gif/internal/media/ffprobe"
	"vid2gif/internal/scan"
)

type convertOptions struct {
	output      string
	width       int
	fps         int
	quality     int
	speed       float64
	recursive   bool
	noLoop      bool
	interactive bool
	batchFile   string
}

// jobParams is the effective parameter set after merging config defaults with
// explicitly set flags. Flags win only when the user actually passed them.
type jobParams struct {
	width   int
	fps     int
	quality int
	speed   float64
	loop    bool
}

func mergeParams(cmd *cobra.Command, cfg *config.Config, opts *convertOptions) jobParams {
	params := jobParams{
		width:   cfg.Defaults.Width,
		fps:     cfg.Defaults.FPS,
		quality: cfg.Defaults.Quality,
		speed:   cfg.Defaults.Speed,
		loop:    cfg.Defaults.Loop,
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		params.width = opts.width
	}
	if flags.Changed("fps") {
		params.fps = opts.fps
	}
	if flags.Changed("quality") {
		params.quality = opts.quality
	}
	if flags.Changed("speed") {
		params.speed = opts.speed
	}
	if flags.Changed("no-loop") {
		params.loop = !opts.noLoop
	}
	return params
}

func runConvert(cmd *cobra.Command, cctx *commandContext, opts *convertOptions, args []string) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}

	params := mergeParams(cmd, cfg, opts)

	if len(args) > 0 && opts.batchFile != "" {
		return errors.New("provide either an input argument or --batch, not both")
	}

	interactive := opts.interactive
	if len(args) == 0 && opts.batchFile == "" && !interactive {
		if !isTerminal(os.Stdin) {
			return cmd.Help()
		}
		interactive = true
	}

	if err := deps.EnsureFFmpeg(cfg.Tools.FFmpeg); err != nil {
		return err
	}
	conv, err := convert.New(cfg.Tools.FFmpeg)
	if err != nil {
		return err
	}

	var jobs []convert.Job
	switch {
	case interactive:
		session := &promptSession{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
		jobs, err = session.run(cfg, params, opts)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to convert.")
			return nil
		}
	case opts.batchFile != "":
		jobs, err = buildBatchJobs(cmd, cfg, opts, params)
	default:
		jobs, err = buildInputJobs(cfg, opts, params, args[0])
	}
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return errors.New("no video files to convert")
	}

	// Reject bad parameters before the first ffmpeg run, not mid-batch.
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			return err
		}
	}

	warnNonVideoInputs(cmd.Context(), cmd, cfg, jobs)

	return executeJobs(cmd.Context(), cmd, conv, jobs, logger)
}

// warnNonVideoInputs probes each input when ffprobe is installed and flags
// files without a video stream. Inspection is advisory: probe failures are
// ignored and the conversion still runs.
func warnNonVideoInputs(ctx context.Context, cmd *cobra.Command, cfg *config.Config, jobs []convert.Job) {
	if _, err := exec.LookPath(cfg.Tools.FFprobe); err != nil {
		return
	}
	for _, job := range jobs {
		result, err := ffprobe.Inspect(ctx, cfg.Tools.FFprobe, job.InputPath)
		if err != nil {
			continue
		}
		if _, ok := result.VideoStream(); !ok {
			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, renderStatusLine(statusWarn, "no video stream detected in "+job.InputPath, shouldColorize(errOut)))
		}
	}
}

// buildInputJobs expands a positional argument, either a single video or a
// directory of them, into the job list.
func buildInputJobs(cfg *config.Config, opts *convertOptions, params jobParams, input string) ([]convert.Job, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("input not found: %s", input)
	}

	if !info.IsDir() {
		return []convert.Job{newJob(input, resolveSingleOutput(input, opts.output), params)}, nil
	}

	videos, err := scan.CollectVideos(input, cfg.Scan.VideoExtensions, opts.recursive)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("no video files found in %s", input)
	}

	outputDir := opts.output
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	jobs := make([]convert.Job, 0, len(videos))
	for _, video := range videos {
		output := convert.DefaultOutputPath(video)
		if outputDir != "" {
			output = filepath.Join(outputDir, gifName(video))
		}
		jobs = append(jobs, newJob(video, output, params))
	}
	return jobs, nil
}

// buildBatchJobs reads the batch file and resolves each listed video. Entries
// that do not exist are reported and skipped so one stale line cannot sink
// the whole run.
func buildBatchJobs(cmd *cobra.Command, cfg *config.Config, opts *convertOptions, params jobParams) ([]convert.Job, error) {
	entries, err := scan.ReadBatchList(opts.batchFile)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("batch file %s lists no videos", opts.batchFile)
	}

	outputDir := ""
	if opts.output != "" {
		if info, err := os.Stat(opts.output); err == nil && info.IsDir() {
			outputDir = opts.output
		}
	}

	errOut := cmd.ErrOrStderr()
	jobs := make([]convert.Job, 0, len(entries))
	for _, entry := range entries {
		if _, err := os.Stat(entry); err != nil {
			fmt.Fprintln(errOut, renderStatusLine(statusWarn, "skipping missing file: "+entry, shouldColorize(errOut)))
			continue
		}
		if !scan.IsVideoFile(entry, cfg.Scan.VideoExtensions) {
			fmt.Fprintln(errOut, renderStatusLine(statusWarn, "skipping non-video file: "+entry, shouldColorize(errOut)))
			continue
		}
		output := convert.DefaultOutputPath(entry)
		switch {
		case outputDir != "":
			output = filepath.Join(outputDir, gifName(entry))
		case opts.output != "" && len(jobs) == 0:
			// A file-style -o can only name one GIF; it applies to the
			// first entry and the rest keep their derived names.
			output = opts.output
		}
		jobs = append(jobs, newJob(entry, output, params))
	}
	return jobs, nil
}

func newJob(input, output string, params jobParams) convert.Job {
	return convert.Job{
		InputPath:  input,
		OutputPath: output,
		Width:      params.width,
		FPS:        params.fps,
		Quality:    params.quality,
		Speed:      params.speed,
		Loop:       params.loop,
	}
}

func resolveSingleOutput(input, output string) string {
	if output == "" {
		return convert.DefaultOutputPath(input)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, gifName(input))
	}
	return output
}

func gifName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".gif"
}

// executeJobs runs the conversions sequentially. A single file fails hard; a
// multi-file run keeps going and only errors when nothing converted.
func executeJobs(ctx context.Context, cmd *cobra.Command, conv *convert.Converter, jobs []convert.Job, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if len(jobs) == 1 {
		job := jobs[0]
		if err := conv.Convert(ctx, job, logger); err != nil {
			fmt.Fprintln(out, renderStatusLine(statusError, fmt.Sprintf("%s: %v", filepath.Base(job.InputPath), err), colorize))
			return fmt.Errorf("conversion failed: %s", job.InputPath)
		}
		fmt.Fprintln(out, renderStatusLine(statusOK, fmt.Sprintf("%s -> %s", filepath.Base(job.InputPath), job.OutputPath), colorize))
		return nil
	}

	var bar *progressbar.ProgressBar
	if isTerminal(os.Stderr) {
		bar = progressbar.NewOptions(len(jobs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	hooks := convert.Hooks{
		OnStart: func(index, total int, job convert.Job) {
			if bar != nil {
				bar.Describe(filepath.Base(job.InputPath))
				return
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] converting: %s\n", index, total, filepath.Base(job.InputPath))
		},
		OnResult: func(index, total int, result convert.Result) {
			if bar != nil {
				_ = bar.Add(1)
			}
			name := filepath.Base(result.Job.InputPath)
			if result.Succeeded() {
				fmt.Fprintln(out, renderStatusLine(statusOK, fmt.Sprintf("%s -> %s", name, result.Job.OutputPath), colorize))
				return
			}
			fmt.Fprintln(out, renderStatusLine(statusError, fmt.Sprintf("%s: %v", name, result.Err), colorize))
		},
	}

	summary := convert.RunAll(ctx, conv, jobs, logger, hooks)
	if bar != nil {
		_ = bar.Finish()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummaryTable(summary))
	fmt.Fprintf(out, "%d of %d videos converted successfully\n", summary.Succeeded(), summary.Attempted())

	if summary.Succeeded() == 0 {
		return errors.New("all conversions failed")
	}
	return nil
}

func renderSummaryTable(summary convert.Summary) string {
	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		status := "converted"
		detail := result.Job.OutputPath
		if !result.Succeeded() {
			status = "failed"
			detail = result.Err.Error()
		}
		rows = append(rows, []string{filepath.Base(result.Job.InputPath), status, detail})
	}
	return renderTable([]string{"Input", "Status", "Output"}, rows)
}
