package pragma

import "testing"

func TestBuildSuppressesAttachedLine(t *testing.T) {
	source := []byte(`import a from "a"; // pants: no-infer-dep
import b from "b"`)

	idx := Build(source)

	if !idx.Suppressed(1) {
		t.Error("expected line 1 to be suppressed")
	}
	if idx.Suppressed(2) {
		t.Error("expected line 2 to be unsuppressed")
	}
}

func TestBuildMultiLineImportPragmaOnFromLine(t *testing.T) {
	source := []byte(`import {
  a,
  b,
} from "pkg" // pants: no-infer-dep
`)

	idx := Build(source)

	if !idx.Suppressed(4) {
		t.Error("expected the line carrying the string literal to be suppressed")
	}
	if idx.Suppressed(1) || idx.Suppressed(2) || idx.Suppressed(3) {
		t.Error("expected only the attachment line to be suppressed")
	}
}

func TestBuildRequiresExactToken(t *testing.T) {
	cases := []string{
		"//pants: no-infer-dep",
		"// pants:no-infer-dep",
		"// pants:  no-infer-dep",
		"// Pants: no-infer-dep",
	}

	for _, c := range cases {
		idx := Build([]byte(c))
		if idx.Suppressed(1) {
			t.Errorf("expected %q to not match the exact pragma token", c)
		}
	}
}

func TestSuppressedNilIndex(t *testing.T) {
	var idx *Index
	if idx.Suppressed(1) {
		t.Error("nil index should report unsuppressed")
	}
}

func TestBuildEmptySource(t *testing.T) {
	idx := Build(nil)
	if idx.Suppressed(1) {
		t.Error("empty source has no suppressed lines")
	}
}
