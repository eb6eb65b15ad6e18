package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/depinfer/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "depinfer",
		Short: "depinfer - JavaScript/TypeScript import dependency inference",
		Long: `depinfer infers the file and package dependencies a JavaScript or
TypeScript source file declares, without building a module graph across
files. It understands static and dynamic imports, CommonJS require calls,
Node subpath-import patterns, and bundler/TypeScript path aliases.`,
		Version: Version,
	}

	rootCmd.AddCommand(inferCmd())
	rootCmd.AddCommand(collectCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("depinfer version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
