package convert

import (
	"context"
	"log/slog"
)

// Result records the outcome of one conversion in a run.
type Result struct {
	Job Job
	Err error
}

// Succeeded reports whether the conversion completed.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Summary aggregates the results of a sequential run.
type Summary struct {
	Results []Result
}

// Attempted returns the number of jobs that ran.
func (s Summary) Attempted() int {
	return len(s.Results)
}

// Succeeded returns the number of completed conversions.
func (s Summary) Succeeded() int {
	count := 0
	for _, result := range s.Results {
		if result.Succeeded() {
			count++
		}
	}
	return count
}

// Failed returns the number of failed conversions.
func (s Summary) Failed() int {
	return s.Attempted() - s.Succeeded()
}

// Hooks lets the CLI surface per-file progress without the runner knowing
// about terminals.
type Hooks struct {
	OnStart  func(index, total int, job Job)
	OnResult func(index, total int, result Result)
}

// RunAll converts jobs strictly sequentially: one ffmpeg invocation runs to
// completion before the next begins. A failing file is recorded and the
// remaining files still run; cancellation stops the run between files.
func RunAll(ctx context.Context, conv *Converter, jobs []Job, logger *slog.Logger, hooks Hooks) Summary {
	summary := Summary{Results: make([]Result, 0, len(jobs))}
	total := len(jobs)
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if hooks.OnStart != nil {
			hooks.OnStart(i+1, total, job)
		}
		result := Result{Job: job, Err: conv.Convert(ctx, job, logger)}
		summary.Results = append(summary.Results, result)
		if hooks.OnResult != nil {
			hooks.OnResult(i+1, total, result)
		}
	}
	return summary
}
