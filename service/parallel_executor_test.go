package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/config"
)

type fakeTask struct {
	name    string
	enabled bool
	delay   time.Duration
	err     error
	calls   *int32
}

func (t *fakeTask) Name() string    { return t.name }
func (t *fakeTask) IsEnabled() bool { return t.enabled }
func (t *fakeTask) Execute(ctx context.Context) (interface{}, error) {
	if t.calls != nil {
		atomic.AddInt32(t.calls, 1)
	}
	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, t.err
}

func TestExecuteRunsAllEnabledTasks(t *testing.T) {
	var calls int32
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "a", enabled: true, calls: &calls},
		&fakeTask{name: "b", enabled: true, calls: &calls},
		&fakeTask{name: "c", enabled: false, calls: &calls},
	}

	e := NewParallelExecutor()
	if err := e.Execute(context.Background(), tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 enabled tasks to run, got %d", calls)
	}
}

func TestExecuteAggregatesFailures(t *testing.T) {
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "ok", enabled: true},
		&fakeTask{name: "bad-1", enabled: true, err: errors.New("boom")},
		&fakeTask{name: "bad-2", enabled: true, err: errors.New("boom")},
	}

	e := NewParallelExecutor()
	err := e.Execute(context.Background(), tasks)
	if err == nil {
		t.Fatal("expected an aggregated error")
	}
	aggErr, ok := err.(*AggregatedError)
	if !ok {
		t.Fatalf("expected *AggregatedError, got %T", err)
	}
	if len(aggErr.Errors) != 2 {
		t.Errorf("expected 2 failed tasks, got %d", len(aggErr.Errors))
	}
}

func TestExecuteNoEnabledTasksIsNotAnError(t *testing.T) {
	tasks := []domain.ExecutableTask{
		&fakeTask{name: "disabled", enabled: false},
	}
	e := NewParallelExecutor()
	if err := e.Execute(context.Background(), tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecuteRespectsMaxConcurrency(t *testing.T) {
	e := NewParallelExecutorFromConfig(&config.PerformanceConfig{MaxGoroutines: 2, TimeoutSeconds: 5})

	tasks := make([]domain.ExecutableTask, 0, 5)
	for i := 0; i < 5; i++ {
		tasks = append(tasks, &fakeTask{
			name:    fmt.Sprintf("t%d", i),
			enabled: true,
			delay:   20 * time.Millisecond,
		})
	}

	start := time.Now()
	if err := e.Execute(context.Background(), tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Five 20ms tasks two at a time need at least three rounds.
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("expected at most 2 tasks in flight (>= 60ms total), finished in %v", elapsed)
	}
}

func TestExecuteTimesOut(t *testing.T) {
	e := NewParallelExecutorFromConfig(&config.PerformanceConfig{MaxGoroutines: 1, TimeoutSeconds: 0})
	e.SetTimeout(10 * time.Millisecond)

	tasks := []domain.ExecutableTask{
		&fakeTask{name: "slow", enabled: true, delay: 200 * time.Millisecond},
	}

	err := e.Execute(context.Background(), tasks)
	if err == nil {
		t.Fatal("expected a timeout-induced failure")
	}
}

func TestSetMaxConcurrencyIgnoresNonPositive(t *testing.T) {
	e := NewParallelExecutor()
	e.SetMaxConcurrency(0)
	if e.maxConcurrency <= 0 {
		t.Errorf("expected maxConcurrency to remain positive, got %d", e.maxConcurrency)
	}
}
