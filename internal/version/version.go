// Package version holds the build identity stamped into the depinfer
// binary via -ldflags at release time.
package version

import "fmt"

// These are overwritten by -ldflags "-X .../internal/version.Version=..."
// in release builds; the zero values describe a local development build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
	BuiltBy = "source"
)

// GetVersion returns Version, or "dev" if it was ever cleared to empty.
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion renders every build-identity field for `depinfer version`.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, by: %s)", GetVersion(), Commit, Date, BuiltBy)
}
