package service

import (
	"testing"

	"github.com/ludo-technologies/depinfer/domain"
)

func TestFacadeCollectDeduplicatesAndSorts(t *testing.T) {
	f := NewFacade()
	source := []byte(`import b from "./b";
import a from "./a";
import a2 from "./a";`)

	specs, err := f.Collect(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"./a", "./b"}
	if len(specs) != len(want) {
		t.Fatalf("got %v, want %v", specs, want)
	}
	for i, w := range want {
		if specs[i] != w {
			t.Fatalf("got %v, want %v", specs, want)
		}
	}
}

func TestFacadeCollectSuppressed(t *testing.T) {
	f := NewFacade()
	specs, err := f.Collect([]byte(`import a from 'b'; // pants: no-infer-dep`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("expected empty collection, got %v", specs)
	}
}

func TestFacadeCollectMultilinePragmaNotOnFromLine(t *testing.T) {
	f := NewFacade()
	source := []byte("import { // pants: no-infer-dep\n a\n} from 'b';")
	specs, err := f.Collect(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 1 || specs[0] != "b" {
		t.Errorf("expected [\"b\"], got %v", specs)
	}
}

func TestFacadeGetDependenciesRejectsInvalidMetadata(t *testing.T) {
	f := NewFacade()
	meta := domain.Metadata{
		ImportPatterns: map[string][]string{
			"#a/*/b/*": {"./x/*"},
		},
	}
	_, err := f.GetDependencies("a.js", []byte(`import a from "./a";`), meta)
	if err == nil {
		t.Fatal("expected InvalidMetadata error for a pattern with more than one '*'")
	}
	if _, ok := err.(*domain.InvalidMetadataError); !ok {
		t.Errorf("expected *domain.InvalidMetadataError, got %T", err)
	}
}

func TestFacadeGetDependenciesEndToEnd(t *testing.T) {
	f := NewFacade()
	source := []byte(`import fs from "fs";
import {x} from "../xes.mjs";`)

	out, err := f.GetDependencies("src/js/a/index.mjs", source, domain.Metadata{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fsInfo, ok := out.Get("fs")
	if !ok {
		t.Fatal("expected an entry for fs")
	}
	if len(fsInfo.PackageImportsSorted()) != 1 || fsInfo.PackageImportsSorted()[0] != "fs" {
		t.Errorf("expected fs as sole package candidate, got %v", fsInfo.PackageImportsSorted())
	}

	xesInfo, ok := out.Get("../xes.mjs")
	if !ok {
		t.Fatal("expected an entry for ../xes.mjs")
	}
	if len(xesInfo.FileImportsSorted()) != 1 || xesInfo.FileImportsSorted()[0] != "src/js/xes.mjs" {
		t.Errorf("expected src/js/xes.mjs, got %v", xesInfo.FileImportsSorted())
	}
}

func TestFacadeGetDependenciesEmptySourceIsNotAnError(t *testing.T) {
	f := NewFacade()
	out, err := f.GetDependencies("a.js", []byte(""), domain.Metadata{})
	if err != nil {
		t.Fatalf("empty source should not be a parse failure: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected zero entries, got %d", out.Len())
	}
}
