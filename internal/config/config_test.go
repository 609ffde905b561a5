package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vid2gif/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.Tools.FFmpeg)
	}
	if cfg.Defaults.FPS != 10 {
		t.Fatalf("unexpected fps default: %d", cfg.Defaults.FPS)
	}
	if cfg.Defaults.Quality != 90 {
		t.Fatalf("unexpected quality default: %d", cfg.Defaults.Quality)
	}
	if cfg.Defaults.Speed != 1.0 {
		t.Fatalf("unexpected speed default: %g", cfg.Defaults.Speed)
	}
	if !cfg.Defaults.Loop {
		t.Fatal("expected looping enabled by default")
	}
	if len(cfg.Scan.VideoExtensions) == 0 || cfg.Scan.VideoExtensions[0] != ".mp4" {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.VideoExtensions)
	}
}

func TestLoadReadsFileAndNormalizesExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tools]
ffmpeg = "/opt/ffmpeg/bin/ffmpeg"

[defaults]
fps = 15
quality = 64
loop = false

[scan]
video_extensions = ["MP4", ".MOV"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing config, got exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Tools.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.Tools.FFmpeg)
	}
	if cfg.Defaults.FPS != 15 || cfg.Defaults.Quality != 64 {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Defaults.Loop {
		t.Fatal("expected loop disabled by file")
	}
	want := []string{".mp4", ".mov"}
	if len(cfg.Scan.VideoExtensions) != len(want) {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.VideoExtensions)
	}
	for i, ext := range want {
		if cfg.Scan.VideoExtensions[i] != ext {
			t.Fatalf("extension %d: got %q want %q", i, cfg.Scan.VideoExtensions[i], ext)
		}
	}
}

func TestLoadRejectsQualityOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[defaults]\nquality = 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for quality out of range")
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, _, _, err := config.Load(missing); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestEnvOverridesFFmpegBinary(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("VID2GIF_FFMPEG", "/usr/local/bin/ffmpeg6")
	chdir(t, t.TempDir())

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Tools.FFmpeg != "/usr/local/bin/ffmpeg6" {
		t.Fatalf("expected env override, got %q", cfg.Tools.FFmpeg)
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Defaults.Quality != 90 {
		t.Fatalf("sample quality mismatch: %d", cfg.Defaults.Quality)
	}
}

func TestExpandPathResolvesTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/videos")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "videos") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestMarshalRoundTrips(t *testing.T) {
	cfg := config.Default()
	raw, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if !strings.Contains(raw, "video_extensions") {
		t.Fatalf("expected scan section in output, got %q", raw)
	}
}
