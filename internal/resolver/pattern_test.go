package resolver

import "testing"

func TestMatchesLiteralPattern(t *testing.T) {
	m := Matches("react", "react")
	if !m.Matched {
		t.Fatal("expected literal pattern to match identical input")
	}
	if m.Capture != nil {
		t.Error("literal pattern should not capture")
	}

	if Matches("react", "react-dom").Matched {
		t.Error("literal pattern must not match a different string")
	}
}

func TestMatchesWildcardPattern(t *testing.T) {
	m := Matches("#internal/*.js", "#internal/asdá.js")
	if !m.Matched {
		t.Fatal("expected wildcard pattern to match")
	}
	if m.Capture == nil || *m.Capture != "asdá" {
		t.Errorf("expected capture \"asdá\", got %v", m.Capture)
	}
}

func TestMatchesUnicodeCaptureBoundary(t *testing.T) {
	m := Matches("#á/*é.js", "#á/asdáé.js")
	if !m.Matched {
		t.Fatal("expected unicode-anchored pattern to match")
	}
	if m.Capture == nil || *m.Capture != "asdá" {
		t.Errorf("expected capture \"asdá\", got %v", m.Capture)
	}
}

func TestMatchesBareWildcardVsEmptyInput(t *testing.T) {
	if Matches("*", "").Matched {
		t.Error("bare '*' must not match the empty input")
	}
	m := Matches("*", "anything")
	if !m.Matched || m.Capture == nil || *m.Capture != "anything" {
		t.Error("bare '*' must match any non-empty input, capturing it whole")
	}
}

func TestMatchesEmptyPatternNeverMatches(t *testing.T) {
	if Matches("", "").Matched {
		t.Error("empty pattern must not match the empty input")
	}
	if Matches("", "anything").Matched {
		t.Error("empty pattern must not match a non-empty input")
	}
}

func TestMatchesOverlapRejected(t *testing.T) {
	if Matches("ab*bc", "abc").Matched {
		t.Error("head and tail overlapping input with no room for capture must not match when ambiguous")
	}
}

func TestMatchesNoOverlapEmptyCapture(t *testing.T) {
	m := Matches("ab*cd", "abcd")
	if !m.Matched || m.Capture == nil || *m.Capture != "" {
		t.Errorf("expected empty capture, got %v", m.Capture)
	}
}

func TestSubstituteRoundTrip(t *testing.T) {
	capture := "foo"
	got := Substitute("./lib/*.js", &capture)
	want := "./lib/foo.js"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstituteNoWildcardIgnoresCapture(t *testing.T) {
	capture := "foo"
	got := Substitute("./lib/fixed.js", &capture)
	if got != "./lib/fixed.js" {
		t.Errorf("literal replacement must be returned unchanged, got %q", got)
	}
}

func TestMatchesLongestPatternTieBreak(t *testing.T) {
	patterns := map[string][]string{
		"#internal/*":    {"./src/internal/*"},
		"#internal/sub/*": {"./src/internal/sub/*"},
	}

	var bestLen int
	var bestPattern string
	for p := range patterns {
		m := Matches(p, "#internal/sub/widget")
		if m.Matched && m.PrefixLen > bestLen {
			bestLen = m.PrefixLen
			bestPattern = p
		}
	}

	if bestPattern != "#internal/sub/*" {
		t.Errorf("expected the longer, more specific pattern to win, got %q", bestPattern)
	}
}
