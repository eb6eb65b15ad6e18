package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/service"
	"github.com/spf13/cobra"
)

var (
	inferConfigPath   string
	inferOutputPath   string
	inferOutputFormat string
)

func inferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer <file>",
		Short: "Infer file and package dependencies for one source file",
		Long: `Infer resolves every import, export-from, dynamic import(), and
require() specifier in a single JavaScript or TypeScript file against the
workspace metadata (package root, subpath-import patterns, path aliases)
and prints the resulting file and package candidates.

Examples:
  depinfer infer src/app.ts
  depinfer infer --format json src/app.ts
  depinfer infer --config depinfer.yaml src/app.ts`,
		Args: cobra.ExactArgs(1),
		RunE: runInfer,
	}

	cmd.Flags().StringVarP(&inferConfigPath, "config", "c", "",
		"Path to a depinfer config file (default: discovered automatically)")
	cmd.Flags().StringVarP(&inferOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&inferOutputFormat, "format", "f", "text",
		"Output format: text, json")

	return cmd
}

func runInfer(cmd *cobra.Command, args []string) (err error) {
	filePath := args[0]

	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	loader := service.NewConfigurationLoader()
	var meta *domain.Metadata
	if inferConfigPath != "" {
		meta, err = loader.LoadConfig(inferConfigPath)
		if err != nil {
			return err
		}
	} else {
		meta = loader.LoadDefaultConfig()
	}

	facade := service.NewFacade()
	output, err := facade.GetDependencies(filePath, source, *meta)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	writer := os.Stdout
	if inferOutputPath != "" {
		f, createErr := os.Create(inferOutputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		writer = f
	}

	format := service.OutputFormatText
	if inferOutputFormat == "json" {
		format = service.OutputFormatJSON
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteInferenceOutput(output, filePath, format, writer); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
