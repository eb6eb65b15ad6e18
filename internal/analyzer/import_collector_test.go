package analyzer

import (
	"testing"

	"github.com/ludo-technologies/depinfer/internal/parser"
	"github.com/ludo-technologies/depinfer/internal/pragma"
)

func collect(t *testing.T, source string) []string {
	t.Helper()
	p := parser.NewParser()
	defer p.Close()

	ast, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	idx := pragma.Build([]byte(source))
	return Collect(ast, idx)
}

func contains(specs []string, want string) bool {
	for _, s := range specs {
		if s == want {
			return true
		}
	}
	return false
}

func TestCollectStaticImport(t *testing.T) {
	specs := collect(t, `import foo from "./foo";`)
	if !contains(specs, "./foo") {
		t.Errorf("expected ./foo in %v", specs)
	}
}

func TestCollectSideEffectImport(t *testing.T) {
	specs := collect(t, `import "./polyfill";`)
	if !contains(specs, "./polyfill") {
		t.Errorf("expected ./polyfill in %v", specs)
	}
}

func TestCollectExportFrom(t *testing.T) {
	specs := collect(t, `export { a } from "./a";
export * from "./b";
export * as ns from "./c";`)
	for _, want := range []string{"./a", "./b", "./c"} {
		if !contains(specs, want) {
			t.Errorf("expected %s in %v", want, specs)
		}
	}
}

func TestCollectBareExportEmitsNothing(t *testing.T) {
	specs := collect(t, `const a = 1; export { a };`)
	if len(specs) != 0 {
		t.Errorf("expected no specifiers from a bare export, got %v", specs)
	}
}

func TestCollectDynamicImport(t *testing.T) {
	specs := collect(t, `async function load() { const m = await import("./lazy"); }`)
	if !contains(specs, "./lazy") {
		t.Errorf("expected ./lazy in %v", specs)
	}
}

func TestCollectRequireCall(t *testing.T) {
	specs := collect(t, `const fs = require("fs");`)
	if !contains(specs, "fs") {
		t.Errorf("expected fs in %v", specs)
	}
}

func TestCollectNewRequireIgnored(t *testing.T) {
	specs := collect(t, `const x = new require("fs");`)
	if contains(specs, "fs") {
		t.Errorf("new require(...) must not be collected, got %v", specs)
	}
}

func TestCollectNonLiteralRequireIgnored(t *testing.T) {
	specs := collect(t, `const name = "fs"; const fs = require(name);`)
	if contains(specs, "name") || contains(specs, "fs") {
		t.Errorf("require(a) with a non-literal argument must be ignored, got %v", specs)
	}
}

func TestCollectSuppressedImportIgnored(t *testing.T) {
	specs := collect(t, `import foo from "./foo"; // pants: no-infer-dep`)
	if contains(specs, "./foo") {
		t.Errorf("suppressed import must not be collected, got %v", specs)
	}
}

func TestCollectSuppressedRequireIgnored(t *testing.T) {
	specs := collect(t, `const fs = require("fs"); // pants: no-infer-dep`)
	if contains(specs, "fs") {
		t.Errorf("suppressed require must not be collected, got %v", specs)
	}
}

func TestCollectDuplicateSpecifiersPreserved(t *testing.T) {
	specs := collect(t, `import a from "./x";
import b from "./x";`)
	count := 0
	for _, s := range specs {
		if s == "./x" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected duplicate occurrences preserved, got %d of ./x in %v", count, specs)
	}
}
