// Package infer takes the raw specifiers produced by the collector and,
// per specifier, applies the pattern resolver and path normalizer plus
// the root/config-root policies to produce file and package candidate
// sets.
package infer

import (
	"strings"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/resolver"
)

// Run applies the driver to every raw specifier collected from filePath,
// merging results into a single InferenceOutput. A specifier repeated in
// source unions its candidate sets across occurrences rather than
// overwriting them.
func Run(filePath string, rawSpecifiers []string, meta domain.Metadata) *domain.InferenceOutput {
	output := domain.NewInferenceOutput()
	dir := dirOf(filePath)

	for _, s := range rawSpecifiers {
		entry := output.Entry(s)

		if isRelative(s) {
			applyRelative(entry, dir, s)
			continue
		}

		applyBare(entry, meta, s)
	}

	return output
}

func isRelative(s string) bool {
	return strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../")
}

// applyRelative normalizes a relative specifier against the file's own
// directory and records the result as a file candidate.
func applyRelative(entry *domain.JavascriptImportInfo, dir, s string) {
	normalized, escaped := resolver.Normalize(dir, s)
	if escaped {
		entry.AddFile(s)
		return
	}
	entry.AddFile(normalized)
}

// applyBare resolves a bare specifier against both the subpath-import
// patterns and the path-alias patterns, recording every candidate either
// produces, then falls back to treating the specifier as a package name of
// its own when an alias matched or when nothing matched at all.
func applyBare(entry *domain.JavascriptImportInfo, meta domain.Metadata, s string) {
	subpathCandidates, subpathMatched := resolver.Resolve(meta.PackageRoot, meta.ImportPatterns, s)

	aliasAnchor := meta.ConfigRoot
	if aliasAnchor == "" {
		aliasAnchor = meta.PackageRoot
	}
	aliasCandidates, aliasMatched := resolver.Resolve(aliasAnchor, meta.Paths, s)

	for _, c := range subpathCandidates {
		addCandidate(entry, c)
	}
	for _, c := range aliasCandidates {
		addCandidate(entry, c)
	}

	switch {
	case aliasMatched:
		// Always keep the raw bare specifier as a fallback third-party
		// candidate when an alias rewrote it, alongside any file
		// candidate(s) the rewrite produced.
		entry.AddPackage(s)
	case !subpathMatched:
		// Neither a subpath pattern nor an alias pattern matched: the raw
		// specifier is the only candidate.
		entry.AddPackage(s)
	}
}

func addCandidate(entry *domain.JavascriptImportInfo, c resolver.Candidate) {
	if c.IsFile {
		entry.AddFile(c.Path)
	} else {
		entry.AddPackage(c.Path)
	}
}

// dirOf returns the workspace-relative directory portion of a
// workspace-relative file path (slash-separated, not an OS path).
func dirOf(filePath string) string {
	idx := strings.LastIndex(filePath, "/")
	if idx < 0 {
		return ""
	}
	return filePath[:idx]
}
