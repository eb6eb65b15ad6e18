// Package service exposes the public entry points over the inference
// core, plus the ambient CLI support (config loading, parallel file
// execution, progress reporting, output formatting) needed to wrap that
// core in a usable tool.
package service

import (
	"sort"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/analyzer"
	"github.com/ludo-technologies/depinfer/internal/infer"
	"github.com/ludo-technologies/depinfer/internal/parser"
	"github.com/ludo-technologies/depinfer/internal/pragma"
)

// Facade implements the two public operations over the inference core.
type Facade struct{}

// NewFacade creates a new inference facade.
func NewFacade() *Facade {
	return &Facade{}
}

// Collect runs the pragma index and import collector over source and
// returns the deduplicated set of raw specifiers, sorted for determinism.
// It always parses as plain JavaScript; exposed primarily for testing the
// collector in isolation.
func (f *Facade) Collect(source []byte) ([]string, error) {
	p := parser.NewParser()
	defer p.Close()

	ast, err := p.Parse(source)
	if err != nil {
		return nil, domain.NewParseFailureError("<input>", err)
	}
	if ast == nil {
		return nil, domain.NewParseFailureError("<input>", errNoAST)
	}

	idx := pragma.Build(source)
	raw := analyzer.Collect(ast, idx)

	set := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// GetDependencies runs the full pipeline: the pragma index and import
// collector produce raw specifiers, then the inference driver resolves
// each one against metadata. It fails only on catastrophic parser failure (no
// usable AST) or invalid metadata; malformed source otherwise degrades to
// best-effort partial results, never an error.
func (f *Facade) GetDependencies(filePath string, source []byte, meta domain.Metadata) (*domain.InferenceOutput, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	ast, parseErr := parser.ParseForLanguage(filePath, source)
	if parseErr != nil {
		// An empty or whitespace-only file is a valid zero-import input,
		// not a parse failure; tree-sitter returns a usable (empty)
		// program node for it, so this branch is reserved for inputs
		// tree-sitter genuinely could not produce any tree for.
		return nil, domain.NewParseFailureError(filePath, parseErr)
	}
	if ast == nil {
		return nil, domain.NewParseFailureError(filePath, errNoAST)
	}

	idx := pragma.Build(source)
	raw := analyzer.Collect(ast, idx)

	return infer.Run(filePath, raw, meta), nil
}

var errNoAST = errNoASTError{}

type errNoASTError struct{}

func (errNoASTError) Error() string { return "parser produced no usable AST" }
