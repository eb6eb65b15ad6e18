package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/depinfer/internal/config"
	"github.com/ludo-technologies/depinfer/service"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a depinfer configuration file",
		Long: `Generate a depinfer configuration file describing the workspace's
package root, subpath-import patterns, and path aliases.

By default, creates depinfer.yaml in the current directory with the
package root set to ".". Use --interactive for a guided setup wizard
that also captures path-alias patterns and the default output format.
The wizard does not prompt for subpath-import patterns.

Examples:
  # Create depinfer.yaml in current directory
  depinfer init

  # Custom output path
  depinfer init --config custom.yaml

  # Overwrite existing file
  depinfer init --force

  # Interactive setup wizard
  depinfer init --interactive
  depinfer init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "depinfer.yaml",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg := config.DefaultConfig()
	cfg.Metadata.PackageRoot = "."

	loader := service.NewConfigurationLoader()
	if existing := loader.FindDefaultConfigFile(); existing != "" {
		if absExisting, err := filepath.Abs(existing); err == nil {
			if absConfigPath, err := filepath.Abs(configPath); err == nil && absExisting != absConfigPath {
				fmt.Printf("Note: %s would already be picked up by auto-discovery; it will take precedence over %s unless --config points at it.\n", absExisting, configPath)
			}
		}
	}

	if interactive {
		var err error
		configPath, err = runInteractiveSetup(cfg, configPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'depinfer scan .' to infer dependencies across your project.")

	return nil
}

func runInteractiveSetup(cfg *config.Config, defaultConfigPath string) (string, error) {
	fmt.Println()
	fmt.Println("depinfer Configuration Setup")
	fmt.Println("=============================")
	fmt.Println()

	rootPrompt := promptui.Prompt{
		Label:   "Workspace package root (relative to the workspace)",
		Default: cfg.Metadata.PackageRoot,
	}
	packageRoot, err := rootPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("package root input cancelled: %w", err)
	}
	if packageRoot != "" {
		cfg.Metadata.PackageRoot = packageRoot
	}

	aliasPrompt := promptui.Prompt{
		Label:   "Path alias, e.g. @/*=./src/* (blank to skip, comma-separated for more)",
		Default: "",
	}
	aliasInput, err := aliasPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("path alias input cancelled: %w", err)
	}
	for _, entry := range strings.Split(aliasInput, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		pattern, replacement, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		cfg.Metadata.Paths[pattern] = []string{replacement}
	}

	formatPrompt := promptui.Select{
		Label: "Default output format",
		Items: []string{"text", "json"},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("output format selection cancelled: %w", err)
	}
	cfg.Output.Format = format

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}
	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	return outputPath, nil
}
