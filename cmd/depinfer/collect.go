package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/depinfer/service"
	"github.com/spf13/cobra"
)

var collectOutputFormat string

func collectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect <file>",
		Short: "Collect the raw import specifiers from one source file",
		Long: `Collect runs only the pragma index and import collector over a file
and prints the deduplicated, sorted list of raw specifiers exactly as
they appear in source, before any resolution against metadata. Useful
for inspecting what a file would feed into inference, or for debugging
// pants: no-infer-dep suppressions.

Examples:
  depinfer collect src/app.ts
  depinfer collect --format json src/app.ts`,
		Args: cobra.ExactArgs(1),
		RunE: runCollect,
	}

	cmd.Flags().StringVarP(&collectOutputFormat, "format", "f", "text",
		"Output format: text, json")

	return cmd
}

func runCollect(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	facade := service.NewFacade()
	specifiers, err := facade.Collect(source)
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	format := service.OutputFormatText
	if collectOutputFormat == "json" {
		format = service.OutputFormatJSON
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteCollected(specifiers, format, os.Stdout); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
