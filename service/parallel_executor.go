package service

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/config"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultMaxConcurrency is used when no positive concurrency limit is
	// configured. NewParallelExecutor itself prefers runtime.NumCPU().
	defaultMaxConcurrency = 4
	defaultTimeout        = 5 * time.Minute
)

// TaskError pairs one task's name with the error it returned.
type TaskError struct {
	TaskName string
	Err      error
}

func (e TaskError) Error() string { return fmt.Sprintf("[%s] %v", e.TaskName, e.Err) }
func (e TaskError) Unwrap() error { return e.Err }

// AggregatedError collects every TaskError from one Execute call so a
// caller sees all failures, not just the first.
type AggregatedError struct {
	Errors []TaskError
}

func (e *AggregatedError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d tasks failed:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the first failure for errors.Is/As.
func (e *AggregatedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0].Err
}

// ParallelExecutorImpl runs a batch of domain.ExecutableTask concurrently,
// bounded by a configurable concurrency limit and an overall timeout, and
// reports progress through an optional domain.ProgressManager.
type ParallelExecutorImpl struct {
	mu             sync.RWMutex
	maxConcurrency int
	timeout        time.Duration
	progress       domain.ProgressManager
}

// NewParallelExecutor returns an executor bounded by runtime.NumCPU() with
// a five-minute overall timeout.
func NewParallelExecutor() *ParallelExecutorImpl {
	return &ParallelExecutorImpl{maxConcurrency: runtime.NumCPU(), timeout: defaultTimeout}
}

// NewParallelExecutorFromConfig builds an executor from scan performance
// settings, substituting defaults for non-positive values.
func NewParallelExecutorFromConfig(cfg *config.PerformanceConfig) *ParallelExecutorImpl {
	concurrency := cfg.MaxGoroutines
	if concurrency <= 0 {
		concurrency = defaultMaxConcurrency
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ParallelExecutorImpl{maxConcurrency: concurrency, timeout: timeout}
}

// NewParallelExecutorWithProgress is NewParallelExecutorFromConfig with a
// progress manager attached so Execute reports per-task completion.
func NewParallelExecutorWithProgress(cfg *config.PerformanceConfig, pm domain.ProgressManager) *ParallelExecutorImpl {
	executor := NewParallelExecutorFromConfig(cfg)
	executor.progress = pm
	return executor
}

// limits reads the current concurrency/timeout pair under the read lock,
// isolating SetMaxConcurrency/SetTimeout races from a concurrent Execute.
func (e *ParallelExecutorImpl) limits() (int, time.Duration) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maxConcurrency, e.timeout
}

// Execute runs every enabled task in tasks concurrently up to the
// configured limit. Each task's error, if any, is captured rather than
// aborting the others; Execute returns an *AggregatedError covering every
// failure once all tasks have run, or nil if none failed. A context
// deadline or cancellation cuts the run short, surfacing as a failure on
// whichever tasks were still in flight.
func (e *ParallelExecutorImpl) Execute(ctx context.Context, tasks []domain.ExecutableTask) error {
	runnable := enabledOnly(tasks)
	if len(runnable) == 0 {
		return nil
	}

	concurrency, timeout := e.limits()
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var tracker domain.TaskProgress = &NoOpTaskProgress{}
	if e.progress != nil {
		tracker = e.progress.StartTask("Executing tasks", len(runnable))
	}
	defer tracker.Complete()

	g, gCtx := errgroup.WithContext(runCtx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	var failures []TaskError

	for _, t := range runnable {
		t := t
		g.Go(func() error {
			if gCtx.Err() != nil {
				mu.Lock()
				failures = append(failures, TaskError{TaskName: t.Name(), Err: gCtx.Err()})
				mu.Unlock()
				tracker.Increment(1)
				return nil
			}

			_, err := t.Execute(gCtx)
			tracker.Increment(1)
			if err != nil {
				mu.Lock()
				failures = append(failures, TaskError{TaskName: t.Name(), Err: err})
				mu.Unlock()
			}
			// Always return nil here: each goroutine records its own
			// failure in failures so the rest keep running, and the
			// aggregate is built once every task has had a chance to run.
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return &AggregatedError{Errors: failures}
	}
	return nil
}

// SetMaxConcurrency updates the concurrency limit for future Execute
// calls. Non-positive values are ignored.
func (e *ParallelExecutorImpl) SetMaxConcurrency(max int) {
	if max <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxConcurrency = max
}

// SetTimeout updates the per-Execute timeout. Non-positive values are
// ignored.
func (e *ParallelExecutorImpl) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timeout = timeout
}

func enabledOnly(tasks []domain.ExecutableTask) []domain.ExecutableTask {
	out := make([]domain.ExecutableTask, 0, len(tasks))
	for _, t := range tasks {
		if t.IsEnabled() {
			out = append(out, t)
		}
	}
	return out
}
