package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/depinfer/app"
	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/config"
	"github.com/ludo-technologies/depinfer/service"
	"github.com/spf13/cobra"
)

var (
	scanConfigPath     string
	scanOutputFormat   string
	scanRecursive      bool
	scanExcludePattern []string
	scanNoProgress     bool
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "Infer dependencies for every JavaScript/TypeScript file under a path",
		Long: `Scan walks one or more paths, collecting JavaScript/TypeScript source
files (honoring .gitignore and --exclude patterns), and runs inference on
each file independently and in parallel. Since inference never builds a
graph across files, this is embarrassingly parallel: one file's result
never depends on another's.

Examples:
  depinfer scan src/
  depinfer scan --exclude "*.test.ts" src/
  depinfer scan --format json src/ > deps.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}

	cmd.Flags().StringVarP(&scanConfigPath, "config", "c", "",
		"Path to a depinfer config file (default: discovered automatically)")
	cmd.Flags().StringVarP(&scanOutputFormat, "format", "f", "text",
		"Output format: text, json")
	cmd.Flags().BoolVar(&scanRecursive, "recursive", true,
		"Recurse into subdirectories")
	cmd.Flags().StringSliceVar(&scanExcludePattern, "exclude", nil,
		"Additional exclude glob patterns (repeatable)")
	cmd.Flags().BoolVar(&scanNoProgress, "no-progress", false,
		"Disable the interactive progress bar")

	return cmd
}

// scanResult is one file's inference result, or the error inferring it.
type scanResult struct {
	filePath string
	output   *domain.InferenceOutput
	err      error
}

// scanTask adapts one file's inference to domain.ExecutableTask so the
// parallel executor can run it alongside every other file in the scan.
type scanTask struct {
	filePath string
	meta     domain.Metadata
	facade   *service.Facade
	resultCh chan<- scanResult
}

func (t *scanTask) Name() string    { return t.filePath }
func (t *scanTask) IsEnabled() bool { return true }
func (t *scanTask) Execute(ctx context.Context) (interface{}, error) {
	source, err := os.ReadFile(t.filePath)
	if err != nil {
		t.resultCh <- scanResult{filePath: t.filePath, err: err}
		return nil, err
	}

	output, err := t.facade.GetDependencies(t.filePath, source, t.meta)
	t.resultCh <- scanResult{filePath: t.filePath, output: output, err: err}
	return output, err
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithTarget(scanConfigPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	meta := &domain.Metadata{
		PackageRoot:    cfg.Metadata.PackageRoot,
		ConfigRoot:     cfg.Metadata.ConfigRoot,
		ImportPatterns: cfg.Metadata.ImportPatterns,
		Paths:          cfg.Metadata.Paths,
	}
	if err := meta.Validate(); err != nil {
		return err
	}

	excludePatterns := append(append([]string{}, cfg.Scan.ExcludePatterns...), scanExcludePattern...)

	fileHelper := app.NewFileHelper()
	files, err := app.ResolveFilePaths(fileHelper, args, scanRecursive, nil, excludePatterns)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no JavaScript/TypeScript files found")
	}

	progressEnabled := !scanNoProgress
	progress := service.NewProgressManager(progressEnabled)
	defer progress.Close()

	executor := service.NewParallelExecutorWithProgress(cfg.Performance(), progress)

	resultCh := make(chan scanResult, len(files))
	facade := service.NewFacade()

	tasks := make([]domain.ExecutableTask, 0, len(files))
	for _, f := range files {
		tasks = append(tasks, &scanTask{filePath: f, meta: *meta, facade: facade, resultCh: resultCh})
	}

	execErr := executor.Execute(context.Background(), tasks)
	close(resultCh)

	results := make(map[string]*scanResult, len(files))
	var order []string
	for r := range resultCh {
		rc := r
		results[r.filePath] = &rc
		order = append(order, r.filePath)
	}

	format := service.OutputFormatText
	if scanOutputFormat == "json" {
		format = service.OutputFormatJSON
	}

	formatter := service.NewOutputFormatter()
	failures := 0
	for _, filePath := range order {
		r := results[filePath]
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", filePath, r.err)
			failures++
			continue
		}
		if format == service.OutputFormatText {
			fmt.Printf("%s\n", filePath)
		}
		if err := formatter.WriteInferenceOutput(r.output, filePath, format, os.Stdout); err != nil {
			return fmt.Errorf("failed to write output for %s: %w", filePath, err)
		}
	}

	if execErr != nil {
		return fmt.Errorf("scan completed with failures: %w", execErr)
	}
	if failures > 0 {
		return fmt.Errorf("%d file(s) failed inference", failures)
	}

	return nil
}
