package service

import (
	"os"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/config"
)

// ConfigurationLoaderImpl loads depinfer's tool configuration and converts
// it into the domain.Metadata the inference facade consumes.
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service.
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path.
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.Metadata, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToMetadata(cfg), nil
}

// LoadDefaultConfig loads the default configuration, searching upward from
// the current directory first.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.Metadata {
	cfg, err := config.LoadConfigWithTarget("", ".")
	if err == nil {
		return c.convertToMetadata(cfg)
	}
	return c.convertToMetadata(config.DefaultConfig())
}

// FindDefaultConfigFile reports the path auto-discovery would load from the
// current directory, or "" if none exists. It mirrors the discovery
// LoadDefaultConfig runs, by asking it to resolve a config file without
// actually reading one — useful for `init` to warn a user before they
// write a config file that a more specific one would shadow.
func (c *ConfigurationLoaderImpl) FindDefaultConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return config.DiscoverConfigPath(cwd)
}

// MergeMetadata overlays non-zero fields of override onto base, giving CLI
// flags priority over the config file while still falling back to it.
func (c *ConfigurationLoaderImpl) MergeMetadata(base, override *domain.Metadata) *domain.Metadata {
	merged := *base

	if override.PackageRoot != "" {
		merged.PackageRoot = override.PackageRoot
	}
	if override.ConfigRoot != "" {
		merged.ConfigRoot = override.ConfigRoot
	}
	if len(override.ImportPatterns) > 0 {
		merged.ImportPatterns = override.ImportPatterns
	}
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	return &merged
}

func (c *ConfigurationLoaderImpl) convertToMetadata(cfg *config.Config) *domain.Metadata {
	return &domain.Metadata{
		PackageRoot:    cfg.Metadata.PackageRoot,
		ConfigRoot:     cfg.Metadata.ConfigRoot,
		ImportPatterns: cfg.Metadata.ImportPatterns,
		Paths:          cfg.Metadata.Paths,
	}
}

// ValidateConfig validates the derived metadata using the same rules the
// facade enforces, so CLI commands can fail fast with a clear message.
func (c *ConfigurationLoaderImpl) ValidateConfig(meta *domain.Metadata) error {
	return meta.Validate()
}
