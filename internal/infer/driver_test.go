package infer

import (
	"testing"

	"github.com/ludo-technologies/depinfer/domain"
)

func mustGet(t *testing.T, out *domain.InferenceOutput, key string) *domain.JavascriptImportInfo {
	t.Helper()
	info, ok := out.Get(key)
	if !ok {
		t.Fatalf("expected entry for %q, output has %v", key, out.Specifiers())
	}
	return info
}

func assertSet(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	wantSet := make(map[string]bool, len(want))
	for _, w := range want {
		wantSet[w] = true
	}
	for _, g := range got {
		if !wantSet[g] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestScenario1SimpleRelative(t *testing.T) {
	out := Run("dir/index.js", []string{"./file.js"}, domain.Metadata{})
	info := mustGet(t, out, "./file.js")
	assertSet(t, info.FileImportsSorted(), "dir/file.js")
	assertSet(t, info.PackageImportsSorted())
}

func TestScenario2BareAndRelative(t *testing.T) {
	out := Run("src/js/a/index.mjs", []string{"fs", "../xes.mjs"}, domain.Metadata{})

	fsInfo := mustGet(t, out, "fs")
	assertSet(t, fsInfo.FileImportsSorted())
	assertSet(t, fsInfo.PackageImportsSorted(), "fs")

	xesInfo := mustGet(t, out, "../xes.mjs")
	assertSet(t, xesInfo.FileImportsSorted(), "src/js/xes.mjs")
	assertSet(t, xesInfo.PackageImportsSorted())
}

func TestScenario3EscapePassThrough(t *testing.T) {
	out := Run("src/index.mjs", []string{"../../xes.mjs"}, domain.Metadata{})
	info := mustGet(t, out, "../../xes.mjs")
	assertSet(t, info.FileImportsSorted(), "../../xes.mjs")
	assertSet(t, info.PackageImportsSorted())
}

func TestScenario4SubpathPattern(t *testing.T) {
	meta := domain.Metadata{
		PackageRoot: "js",
		ImportPatterns: map[string][]string{
			"#nested/*.mjs": {"./src/lib/nested/*.mjs"},
		},
	}
	out := Run("js/src/lib/index.mjs", []string{"#nested/stuff.mjs"}, meta)
	info := mustGet(t, out, "#nested/stuff.mjs")
	assertSet(t, info.FileImportsSorted(), "js/src/lib/nested/stuff.mjs")
	assertSet(t, info.PackageImportsSorted())
}

func TestScenario5PathAlias(t *testing.T) {
	meta := domain.Metadata{
		PackageRoot: "js/project",
		ConfigRoot:  "js/project",
		Paths: map[string][]string{
			"@component/*": {"./src/component/*"},
		},
	}
	out := Run("js/project/src/app/index.js", []string{"@component/lib/button.js"}, meta)
	info := mustGet(t, out, "@component/lib/button.js")
	assertSet(t, info.FileImportsSorted(), "js/project/src/component/lib/button.js")
	assertSet(t, info.PackageImportsSorted(), "@component/lib/button.js")
}

func TestScenario6PolyfillPattern(t *testing.T) {
	meta := domain.Metadata{
		PackageRoot: "js",
		ImportPatterns: map[string][]string{
			"#websockets": {"websockets", "./websockets-polyfill.js"},
		},
	}
	out := Run("js/src/index.mjs", []string{"#websockets"}, meta)
	info := mustGet(t, out, "#websockets")
	assertSet(t, info.FileImportsSorted(), "js/websockets-polyfill.js")
	assertSet(t, info.PackageImportsSorted(), "websockets")
}

func TestEmptyMetadataBareSpecifierIsPackageOnly(t *testing.T) {
	out := Run("a/b.js", []string{"react", "lodash"}, domain.Metadata{})
	for _, s := range []string{"react", "lodash"} {
		info := mustGet(t, out, s)
		assertSet(t, info.FileImportsSorted())
		assertSet(t, info.PackageImportsSorted(), s)
	}
}

func TestRepeatedSpecifierUnionsCandidates(t *testing.T) {
	meta := domain.Metadata{
		PackageRoot: "js",
		ImportPatterns: map[string][]string{
			"#x": {"pkg-a"},
		},
	}
	out := Run("js/index.js", []string{"#x", "#x"}, meta)
	if out.Len() != 1 {
		t.Fatalf("expected one merged entry, got %d", out.Len())
	}
	info := mustGet(t, out, "#x")
	assertSet(t, info.PackageImportsSorted(), "pkg-a")
}

func TestAliasConfigRootFallsBackToPackageRoot(t *testing.T) {
	meta := domain.Metadata{
		PackageRoot: "js",
		Paths: map[string][]string{
			"@lib/*": {"./src/lib/*"},
		},
	}
	out := Run("js/app/index.js", []string{"@lib/widget"}, meta)
	info := mustGet(t, out, "@lib/widget")
	assertSet(t, info.FileImportsSorted(), "js/src/lib/widget")
	assertSet(t, info.PackageImportsSorted(), "@lib/widget")
}
