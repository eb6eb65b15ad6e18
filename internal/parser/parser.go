// Package parser wraps tree-sitter's JavaScript and TypeScript/TSX grammars
// behind a single Parser type and turns the resulting concrete syntax tree
// into the lighter Node tree the rest of this repository walks.
package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// typeScriptExtensions are the file suffixes that select the TypeScript/TSX
// grammar in ParseForLanguage rather than plain JavaScript.
var typeScriptExtensions = []string{".ts", ".tsx", ".mts", ".cts"}

// Parser holds a configured tree-sitter grammar for one language.
type Parser struct {
	sitter *sitter.Parser
	lang   *sitter.Language
	isTS   bool
}

// NewParser returns a Parser configured for plain JavaScript.
func NewParser() *Parser {
	lang := javascript.GetLanguage()
	sp := sitter.NewParser()
	sp.SetLanguage(lang)
	return &Parser{sitter: sp, lang: lang, isTS: false}
}

// NewTypeScriptParser returns a Parser configured for TypeScript/TSX, which
// is a strict syntactic superset of JSX-flavored JavaScript.
func NewTypeScriptParser() *Parser {
	lang := tsx.GetLanguage()
	sp := sitter.NewParser()
	sp.SetLanguage(lang)
	return &Parser{sitter: sp, lang: lang, isTS: true}
}

// ParseFile parses source and builds this repository's AST from the
// resulting tree-sitter tree. filename is used only for error messages and
// to seed Node.Location; it need not exist on disk.
func (p *Parser) ParseFile(filename string, source []byte) (*Node, error) {
	tree, err := p.sitter.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter produced no root node for %s", filename)
	}

	return NewASTBuilder(filename, source).Build(root), nil
}

// Parse parses anonymous source with no backing filename.
func (p *Parser) Parse(source []byte) (*Node, error) {
	return p.ParseFile("<input>", source)
}

// ParseString is a convenience wrapper around Parse for string literals in
// tests.
func (p *Parser) ParseString(source string) (*Node, error) {
	return p.Parse([]byte(source))
}

// IsTypeScript reports whether this Parser was built by NewTypeScriptParser.
func (p *Parser) IsTypeScript() bool {
	return p.isTS
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	if p.sitter != nil {
		p.sitter.Close()
	}
}

// ParseForLanguage selects a JavaScript or TypeScript/TSX parser based on
// filename's extension, parses source with it, and closes the parser before
// returning.
func ParseForLanguage(filename string, source []byte) (*Node, error) {
	p := NewParser()
	if isTypeScriptFile(filename) {
		p = NewTypeScriptParser()
	}
	defer p.Close()

	return p.ParseFile(filename, source)
}

func isTypeScriptFile(filename string) bool {
	for _, ext := range typeScriptExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
