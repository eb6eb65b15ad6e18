// Package config loads depinfer's own tool configuration: default output
// format, default workspace metadata (package root, config root, subpath
// import and path-alias tables), and scan behavior. Discovery walks
// upward from the target directory to the filesystem root before falling
// back to XDG config locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/depinfer/internal/constants"
)

// MetadataConfig mirrors domain.Metadata in a form viper can unmarshal
// directly from YAML/JSON/TOML.
type MetadataConfig struct {
	PackageRoot    string              `mapstructure:"package_root" yaml:"package_root"`
	ConfigRoot     string              `mapstructure:"config_root" yaml:"config_root"`
	ImportPatterns map[string][]string `mapstructure:"import_patterns" yaml:"import_patterns"`
	Paths          map[string][]string `mapstructure:"paths" yaml:"paths"`
}

// ScanConfig controls the `scan` subcommand's directory walk.
type ScanConfig struct {
	Recursive       bool     `mapstructure:"recursive" yaml:"recursive"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
	MaxConcurrency  int      `mapstructure:"max_concurrency" yaml:"max_concurrency"`
	TimeoutSeconds  int      `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// OutputConfig controls default rendering.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is depinfer's top-level tool configuration.
type Config struct {
	Metadata MetadataConfig `mapstructure:"metadata" yaml:"metadata"`
	Scan     ScanConfig     `mapstructure:"scan" yaml:"scan"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns the configuration used when no config file is
// found and none is explicitly requested.
func DefaultConfig() *Config {
	return &Config{
		Metadata: MetadataConfig{
			ImportPatterns: map[string][]string{},
			Paths:          map[string][]string{},
		},
		Scan: ScanConfig{
			Recursive:       true,
			ExcludePatterns: []string{"node_modules", "dist", "build", ".git"},
			MaxConcurrency:  0, // 0 means "use the executor's default limit of 4"
			TimeoutSeconds:  300,
		},
		Output: OutputConfig{
			Format: constants.OutputFormatText,
		},
	}
}

// configFileNames are the basenames LoadConfig recognizes, tried in order
// within each candidate directory.
var configFileNames = []string{
	constants.ConfigFileName,
	"depinfer.yml",
	".depinferrc",
	".depinferrc.yaml",
	"depinfer.json",
	".depinfer.json",
}

// LoadConfig loads configuration from an explicit path, or discovers one
// if configPath is empty.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration, searching upward from
// targetPath when configPath is not explicitly given.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	if configPath == "" {
		return DefaultConfig(), nil
	}

	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// firstExisting returns the first path among join(dir, name) for name in
// configFileNames that exists on disk, or "" if none do.
func firstExisting(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ancestorsOf returns path's directory followed by each of its parents up
// to and including the filesystem root. If path can't be resolved to an
// absolute path, it returns nil.
func ancestorsOf(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	var chain []string
	for dir := abs; ; {
		chain = append(chain, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return chain
}

// xdgConfigDirs returns, in priority order, the directories XDG-style
// tools check for per-tool configuration: $XDG_CONFIG_HOME/<tool>,
// ~/.config/<tool>, and finally $HOME itself for backward compatibility.
func xdgConfigDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, constants.ToolName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", constants.ToolName), home)
	}
	return dirs
}

// DiscoverConfigPath exposes the same discovery findDefaultConfig runs
// internally, so a caller (e.g. `init`'s shadowing warning) can ask what
// LoadConfigWithTarget would pick up without actually reading it.
func DiscoverConfigPath(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// findDefaultConfig searches, in order: targetPath's ancestor chain (if
// given), the current directory, and the XDG config locations; then falls
// back to an explicit path in the tool's environment variable.
func findDefaultConfig(targetPath string) string {
	var searchDirs []string
	if targetPath != "" {
		searchDirs = append(searchDirs, ancestorsOf(targetPath)...)
	}
	searchDirs = append(searchDirs, ".")
	searchDirs = append(searchDirs, xdgConfigDirs()...)

	for _, dir := range searchDirs {
		if found := firstExisting(dir); found != "" {
			return found
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate checks the loaded configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Scan.MaxConcurrency < 0 {
		return fmt.Errorf("scan.max_concurrency must be >= 0, got %d", c.Scan.MaxConcurrency)
	}
	if c.Scan.TimeoutSeconds < 0 {
		return fmt.Errorf("scan.timeout_seconds must be >= 0, got %d", c.Scan.TimeoutSeconds)
	}
	switch c.Output.Format {
	case "", constants.OutputFormatText, constants.OutputFormatJSON:
	default:
		return fmt.Errorf("output.format must be one of: text, json, got %q", c.Output.Format)
	}
	return nil
}

// SaveConfig writes config to path in the format implied by its extension.
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	v.Set("metadata", config.Metadata)
	v.Set("scan", config.Scan)
	v.Set("output", config.Output)

	return v.WriteConfigAs(path)
}

// PerformanceConfig adapts ScanConfig to the shape the parallel executor
// expects.
type PerformanceConfig struct {
	MaxGoroutines  int
	TimeoutSeconds int
}

// Performance extracts scan concurrency/timeout settings.
func (c *Config) Performance() *PerformanceConfig {
	return &PerformanceConfig{
		MaxGoroutines:  c.Scan.MaxConcurrency,
		TimeoutSeconds: c.Scan.TimeoutSeconds,
	}
}
