package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vid2gif/internal/convert"
)

// failingExecutor fails every pass whose input path contains "bad".
type failingExecutor struct {
	calls [][]string
}

func (f *failingExecutor) Run(_ context.Context, binary string, args []string) (string, error) {
	f.calls = append(f.calls, append([]string{binary}, args...))
	for _, arg := range args {
		if strings.Contains(arg, "bad") {
			return "Error: broken input", errors.New("exit status 1")
		}
	}
	target := args[len(args)-1]
	if err := os.WriteFile(target, []byte("data"), 0o644); err != nil {
		return "", err
	}
	return "", nil
}

func makeJobs(t *testing.T, names ...string) []convert.Job {
	t.Helper()
	dir := t.TempDir()
	jobs := make([]convert.Job, 0, len(names))
	for _, name := range names {
		input := filepath.Join(dir, name)
		if err := os.WriteFile(input, []byte("video"), 0o644); err != nil {
			t.Fatal(err)
		}
		jobs = append(jobs, convert.Job{
			InputPath:  input,
			OutputPath: convert.DefaultOutputPath(input),
			FPS:        10,
			Quality:    90,
			Speed:      1.0,
			Loop:       true,
		})
	}
	return jobs
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	jobs := makeJobs(t, "first.mp4", "bad.mp4", "third.mp4")
	exec := &failingExecutor{}
	conv, err := convert.New("ffmpeg", convert.WithExecutor(exec))
	if err != nil {
		t.Fatal(err)
	}

	var started, finished []string
	summary := convert.RunAll(context.Background(), conv, jobs, nil, convert.Hooks{
		OnStart: func(index, total int, job convert.Job) {
			started = append(started, filepath.Base(job.InputPath))
			if total != 3 {
				t.Fatalf("unexpected total: %d", total)
			}
		},
		OnResult: func(index, total int, result convert.Result) {
			finished = append(finished, filepath.Base(result.Job.InputPath))
		},
	})

	if summary.Attempted() != 3 {
		t.Fatalf("expected 3 attempts, got %d", summary.Attempted())
	}
	if summary.Succeeded() != 2 || summary.Failed() != 1 {
		t.Fatalf("unexpected counts: %d succeeded, %d failed", summary.Succeeded(), summary.Failed())
	}
	if summary.Results[1].Succeeded() {
		t.Fatal("expected second job to fail")
	}
	if !summary.Results[2].Succeeded() {
		t.Fatal("a failure must not prevent later files from converting")
	}
	if len(started) != 3 || started[0] != "first.mp4" || started[2] != "third.mp4" {
		t.Fatalf("unexpected start order: %v", started)
	}
	if len(finished) != 3 {
		t.Fatalf("expected 3 result callbacks, got %v", finished)
	}
}

func TestRunAllStopsOnCancellation(t *testing.T) {
	jobs := makeJobs(t, "a.mp4", "b.mp4")
	conv, err := convert.New("ffmpeg", convert.WithExecutor(&failingExecutor{}))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := convert.RunAll(ctx, conv, jobs, nil, convert.Hooks{})
	if summary.Attempted() != 0 {
		t.Fatalf("expected no attempts after cancellation, got %d", summary.Attempted())
	}
}

func TestRunAllEmptyJobList(t *testing.T) {
	conv, err := convert.New("ffmpeg", convert.WithExecutor(&failingExecutor{}))
	if err != nil {
		t.Fatal(err)
	}
	summary := convert.RunAll(context.Background(), conv, nil, nil, convert.Hooks{})
	if summary.Attempted() != 0 || summary.Failed() != 0 {
		t.Fatalf("unexpected summary for empty run: %+v", summary)
	}
}
