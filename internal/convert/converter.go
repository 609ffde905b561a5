package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"vid2gif/internal/logging"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// Option configures the converter.
type Option func(*Converter)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Converter) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Converter drives ffmpeg's two-pass palette workflow for one job at a time.
type Converter struct {
	binary string
	exec   Executor
}

// New constructs a converter around the given ffmpeg binary.
func New(binary string, opts ...Option) (*Converter, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	conv := &Converter{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(conv)
	}
	return conv, nil
}

// Convert runs the two ffmpeg passes for job: palette generation, then the
// GIF render against that palette. The palette is a temp file next to the
// output and is removed on every exit path.
func (c *Converter) Convert(ctx context.Context, job Job, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := job.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(job.InputPath); err != nil {
		return wrap(ErrValidation, "input", fmt.Sprintf("file not found: %s", job.InputPath), err)
	}
	if dir := filepath.Dir(job.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	// Guard the output path so two vid2gif processes cannot write the same GIF.
	lockPath := job.OutputPath + ".lock"
	lock := flock.New(lockPath)
	held, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !held {
		return wrap(ErrOutputBusy, "output", fmt.Sprintf("%s is being written by another conversion", job.OutputPath), nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	palettePath := paletteTempPath(job.OutputPath)
	defer os.Remove(palettePath)

	paletteArgs := job.PaletteArgs(palettePath)
	logger.Debug("generating palette",
		logging.String("input", job.InputPath),
		logging.String("command", c.binary+" "+strings.Join(paletteArgs, " ")),
	)
	if output, err := c.exec.Run(ctx, c.binary, paletteArgs); err != nil {
		return wrap(ErrExternalTool, "palette generation", strings.TrimSpace(output), err)
	}

	renderArgs := job.RenderArgs(palettePath)
	logger.Debug("rendering gif",
		logging.String("output", job.OutputPath),
		logging.String("command", c.binary+" "+strings.Join(renderArgs, " ")),
	)
	if output, err := c.exec.Run(ctx, c.binary, renderArgs); err != nil {
		return wrap(ErrExternalTool, "gif render", strings.TrimSpace(output), err)
	}

	logger.Info("gif written",
		logging.String("input", job.InputPath),
		logging.String("output", job.OutputPath),
		logging.Int("fps", job.FPS),
		logging.Int("quality", job.Quality),
		logging.Float64("speed", job.Speed),
	)
	return nil
}

// paletteTempPath places the palette PNG next to the output under a unique
// name so concurrent conversions into one directory never collide.
func paletteTempPath(outputPath string) string {
	dir := filepath.Dir(outputPath)
	stem := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	return filepath.Join(dir, fmt.Sprintf("%s-palette-%s.png", stem, uuid.NewString()))
}
