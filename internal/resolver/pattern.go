// Package resolver implements the single-wildcard pattern matcher, the
// pattern-table resolver, and the path normalizer used to turn a raw
// import specifier into workspace candidates.
package resolver

import "strings"

// Match is the result of matching a pattern against an input: either no
// match, or a match carrying the pattern's byte length (used only for
// longest-pattern tie-break) and an optional captured substring.
type Match struct {
	Matched   bool
	PrefixLen int
	Capture   *string
}

// NoMatch is the zero-value non-match result.
var NoMatch = Match{}

// Matches implements the pattern DSL: a pattern contains at most one '*'.
// A literal pattern (no '*') matches only an identical input. A glob
// pattern matches any input that begins with the text before '*' and ends
// with the text after it, capturing the substring in between.
//
// The comparison is performed on UTF-8 byte slices, but is codepoint-correct:
// '*' is ASCII and cannot appear as a continuation byte, so splitting the
// pattern on it always lands on a rune boundary, and strings.HasPrefix /
// HasSuffix anchored at the very start/end of input can only align on rune
// boundaries too — so the captured middle substring is always a valid,
// unsplit run of codepoints.
func Matches(pattern, input string) Match {
	if pattern == "" {
		return NoMatch
	}

	starIdx := strings.IndexByte(pattern, '*')
	if starIdx < 0 {
		if pattern == input {
			return Match{Matched: true, PrefixLen: len(pattern)}
		}
		return NoMatch
	}

	head := pattern[:starIdx]
	tail := pattern[starIdx+1:]

	if !strings.HasPrefix(input, head) || !strings.HasSuffix(input, tail) {
		return NoMatch
	}
	if len(head)+len(tail) > len(input) {
		return NoMatch
	}
	// Pattern "*" (head == tail == "") matches any non-empty input but not
	// the empty input — the general overlap check above doesn't catch this
	// case since 0+0 <= 0.
	if head == "" && tail == "" && input == "" {
		return NoMatch
	}

	capture := input[len(head) : len(input)-len(tail)]
	return Match{Matched: true, PrefixLen: len(pattern), Capture: &capture}
}

// Substitute renders a replacement template by substituting capture for
// '*'. A replacement with no '*' is returned unchanged regardless of
// capture (used for literal patterns, whose capture is always nil).
func Substitute(replacement string, capture *string) string {
	if !strings.Contains(replacement, "*") {
		return replacement
	}
	c := ""
	if capture != nil {
		c = *capture
	}
	return strings.Replace(replacement, "*", c, 1)
}
