package deps

import (
	"os"
	"path/filepath"
	"testing"

	"vid2gif/internal/config"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckReportsPresentAndMissing(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present")

	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := Check(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestCheckHandlesUnconfiguredCommand(t *testing.T) {
	results := Check([]Requirement{{Name: "Empty", Command: "   "}})
	if results[0].Available {
		t.Fatal("expected unconfigured command to be unavailable")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", results[0].Detail)
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FFmpeg = "/opt/ffmpeg"
	cfg.Tools.FFprobe = "/opt/ffprobe"

	reqs := Requirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/ffmpeg" || reqs[0].Optional {
		t.Fatalf("unexpected ffmpeg requirement: %#v", reqs[0])
	}
	if reqs[1].Command != "/opt/ffprobe" || !reqs[1].Optional {
		t.Fatalf("unexpected ffprobe requirement: %#v", reqs[1])
	}
}

func TestEnsureFFmpeg(t *testing.T) {
	binDir := t.TempDir()
	stub := writeStub(t, binDir, "ffmpeg")

	if err := EnsureFFmpeg(stub); err != nil {
		t.Fatalf("expected stub to satisfy check: %v", err)
	}
	if err := EnsureFFmpeg("definitely-not-ffmpeg-here"); err == nil {
		t.Fatal("expected error for missing ffmpeg")
	}
}
