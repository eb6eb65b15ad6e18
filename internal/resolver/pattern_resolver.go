package resolver

import "strings"

// Candidate is one resolved candidate produced from a matched pattern
// replacement: either a workspace-relative file path or a bare package
// name, discriminated by IsFile.
type Candidate struct {
	Path   string
	IsFile bool
}

// Resolve picks the longest-matching pattern in patterns for spec and
// substitutes the capture into each of its replacements, producing zero or
// more candidates. matched reports whether any pattern matched spec at
// all — the driver needs this independent of whether any candidate was
// produced, since a matched literal pattern with a bare replacement still
// counts as "matched" for the purposes of its own raw-specifier fallback
// rule.
func Resolve(anchor string, patterns map[string][]string, spec string) (candidates []Candidate, matched bool) {
	var bestPattern string
	var bestReplacements []string
	bestLen := -1

	for pattern, replacements := range patterns {
		m := Matches(pattern, spec)
		if !m.Matched {
			continue
		}
		if m.PrefixLen > bestLen {
			bestLen = m.PrefixLen
			bestPattern = pattern
			bestReplacements = replacements
		}
	}

	if bestLen < 0 {
		return nil, false
	}

	capture := Matches(bestPattern, spec).Capture

	for _, r := range bestReplacements {
		substituted := Substitute(r, capture)

		if strings.HasPrefix(r, "./") || strings.HasPrefix(r, "../") {
			normalized, escaped := Normalize(anchor, substituted)
			if escaped {
				candidates = append(candidates, Candidate{Path: substituted, IsFile: true})
				continue
			}
			candidates = append(candidates, Candidate{Path: normalized, IsFile: true})
			continue
		}

		candidates = append(candidates, Candidate{Path: substituted, IsFile: false})
	}

	return candidates, true
}
