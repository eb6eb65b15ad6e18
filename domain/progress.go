package domain

import "context"

// TaskProgress reports progress for a single long-running task.
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// ProgressManager creates and manages TaskProgress instances, used by the
// scan subcommand to report per-file inference progress.
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// ExecutableTask is a unit of work the parallel executor can run
// concurrently — one per file during a scan.
type ExecutableTask interface {
	Name() string
	IsEnabled() bool
	Execute(ctx context.Context) (interface{}, error)
}
