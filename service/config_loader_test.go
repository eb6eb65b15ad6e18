package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/depinfer/domain"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "depinfer.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfigFromExplicitPath(t *testing.T) {
	path := writeTempConfig(t, `
metadata:
  package_root: js
  import_patterns:
    "#lib/*": ["./src/lib/*"]
`)

	loader := NewConfigurationLoader()
	meta, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.PackageRoot != "js" {
		t.Errorf("expected package_root js, got %q", meta.PackageRoot)
	}
	if len(meta.ImportPatterns) != 1 {
		t.Errorf("expected one import pattern, got %v", meta.ImportPatterns)
	}
}

func TestLoadConfigMissingFileIsAConfigError(t *testing.T) {
	loader := NewConfigurationLoader()
	_, err := loader.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if _, ok := err.(*domain.ConfigError); !ok {
		t.Errorf("expected *domain.ConfigError, got %T", err)
	}
}

func TestMergeMetadataOverridesNonZeroFields(t *testing.T) {
	loader := NewConfigurationLoader()
	base := &domain.Metadata{PackageRoot: "base-root", ConfigRoot: "base-config"}
	override := &domain.Metadata{PackageRoot: "override-root"}

	merged := loader.MergeMetadata(base, override)
	if merged.PackageRoot != "override-root" {
		t.Errorf("expected override-root, got %q", merged.PackageRoot)
	}
	if merged.ConfigRoot != "base-config" {
		t.Errorf("expected base-config to survive, got %q", merged.ConfigRoot)
	}
}

func TestValidateConfigRejectsInvalidMetadata(t *testing.T) {
	loader := NewConfigurationLoader()
	meta := &domain.Metadata{
		ImportPatterns: map[string][]string{"a/*/b/*": {"./x"}},
	}
	if err := loader.ValidateConfig(meta); err == nil {
		t.Fatal("expected a validation error")
	}
}
