package resolver

import "testing"

func TestResolveSubpathFileReplacement(t *testing.T) {
	patterns := map[string][]string{
		"#utils/*": {"./src/utils/*.js"},
	}

	candidates, matched := Resolve("pkg", patterns, "#utils/format")
	if !matched {
		t.Fatal("expected a match")
	}
	if len(candidates) != 1 || !candidates[0].IsFile || candidates[0].Path != "pkg/src/utils/format.js" {
		t.Errorf("unexpected candidates: %+v", candidates)
	}
}

func TestResolveBareReplacement(t *testing.T) {
	patterns := map[string][]string{
		"#polyfill": {"lodash", "./polyfills/shim.js"},
	}

	candidates, matched := Resolve("pkg", patterns, "#polyfill")
	if !matched {
		t.Fatal("expected a match")
	}
	if len(candidates) != 2 {
		t.Fatalf("expected two candidates, got %d", len(candidates))
	}

	var sawPackage, sawFile bool
	for _, c := range candidates {
		if !c.IsFile && c.Path == "lodash" {
			sawPackage = true
		}
		if c.IsFile && c.Path == "pkg/polyfills/shim.js" {
			sawFile = true
		}
	}
	if !sawPackage || !sawFile {
		t.Errorf("expected one package and one file candidate, got %+v", candidates)
	}
}

func TestResolveNoMatch(t *testing.T) {
	patterns := map[string][]string{
		"#utils/*": {"./src/utils/*.js"},
	}

	candidates, matched := Resolve("pkg", patterns, "react")
	if matched {
		t.Error("expected no match")
	}
	if candidates != nil {
		t.Errorf("expected no candidates, got %+v", candidates)
	}
}

func TestResolveEscapedReplacementPassesThroughTemplate(t *testing.T) {
	patterns := map[string][]string{
		"#out/*": {"../../*.js"},
	}

	candidates, matched := Resolve("src", patterns, "#out/widget")
	if !matched {
		t.Fatal("expected a match")
	}
	if len(candidates) != 1 || !candidates[0].IsFile {
		t.Fatalf("unexpected candidates: %+v", candidates)
	}
	if candidates[0].Path != "../../widget.js" {
		t.Errorf("expected pass-through substituted (unnormalized) path, got %q", candidates[0].Path)
	}
}
