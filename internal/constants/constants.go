package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "depinfer"

	// ConfigFileName is the default config file name
	ConfigFileName = "depinfer.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "DEPINFER"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// JS/TS source file extensions recognized by the scan subcommand.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".mts", ".cts"}
