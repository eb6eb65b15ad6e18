package service

import (
	"io"
	"os"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// barTheme is the block-character theme every progress bar this package
// renders shares.
var barTheme = progressbar.Theme{
	Saucer:        "█",
	SaucerHead:    "█",
	SaucerPadding: "░",
	BarStart:      "[",
	BarEnd:        "]",
}

// IsInteractiveEnvironment reports whether stderr is attached to a
// terminal. scan consults this to decide whether rendering a progress bar
// makes sense or would just spam a log file.
func IsInteractiveEnvironment() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// NewProgressManager returns an interactive, bar-rendering
// domain.ProgressManager when enabled is true and stderr is a terminal,
// and a silent NoOpProgressManager otherwise.
func NewProgressManager(enabled bool) domain.ProgressManager {
	if !enabled || !IsInteractiveEnvironment() {
		return &NoOpProgressManager{}
	}
	return newBarProgressManager(os.Stderr)
}

// barProgressManager renders each task as a schollz/progressbar bar
// written to a shared writer, keeping every bar it creates so Close can
// finish them all even if a caller forgot to.
type barProgressManager struct {
	writer io.Writer
	bars   []*progressbar.ProgressBar
}

func newBarProgressManager(w io.Writer) *barProgressManager {
	return &barProgressManager{writer: w}
}

func (pm *barProgressManager) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(barTheme),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	pm.bars = append(pm.bars, bar)
	return &barTaskProgress{bar: bar}
}

func (pm *barProgressManager) IsInteractive() bool { return true }

func (pm *barProgressManager) Close() {
	for _, bar := range pm.bars {
		_ = bar.Finish()
	}
	pm.bars = nil
}

// barTaskProgress adapts one progressbar.ProgressBar to domain.TaskProgress.
type barTaskProgress struct {
	bar *progressbar.ProgressBar
}

func (tp *barTaskProgress) Increment(n int)             { _ = tp.bar.Add(n) }
func (tp *barTaskProgress) Describe(description string) { tp.bar.Describe(description) }
func (tp *barTaskProgress) Complete()                   { _ = tp.bar.Finish() }

// NoOpProgressManager discards every progress update; used when progress
// is disabled or stderr isn't a terminal.
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}
func (pm *NoOpProgressManager) IsInteractive() bool { return false }
func (pm *NoOpProgressManager) Close()              {}

// NoOpTaskProgress discards every call; returned by NoOpProgressManager
// and used by ParallelExecutorImpl as the default when no progress
// manager is attached.
type NoOpTaskProgress struct{}

func (tp *NoOpTaskProgress) Increment(_ int)   {}
func (tp *NoOpTaskProgress) Describe(_ string) {}
func (tp *NoOpTaskProgress) Complete()         {}
