// Package analyzer walks a parsed AST and extracts the raw module
// specifier strings that a file imports or re-exports, consulting a
// pragma index to suppress ignored constructs. Parse errors never abort
// collection — well-formed statements the parser produced successfully
// still contribute.
package analyzer

import (
	"github.com/ludo-technologies/depinfer/internal/parser"
	"github.com/ludo-technologies/depinfer/internal/pragma"
)

// Collect walks ast and returns every raw specifier lifted from:
//   - import ... from "M" (default, namespace, named, type-only, side-effect)
//   - export ... from "M" (named re-export, export *, export * as x)
//   - import("M") where M is a string literal
//   - require("M") where M is a string literal
//
// Specifiers whose attachment line carries the ignore pragma are omitted.
// Duplicate occurrences of the same specifier are preserved in the
// returned slice; callers that need a deduplicated set should dedupe.
func Collect(ast *parser.Node, idx *pragma.Index) []string {
	if ast == nil {
		return nil
	}

	var raw []string
	visited := make(map[string]bool)

	ast.Walk(func(node *parser.Node) bool {
		key := nodeLocationKey(node)
		if visited[key] {
			return true
		}

		switch node.Type {
		case parser.NodeImportDeclaration:
			visited[key] = true
			if s, ok := importFromClause(node, idx); ok {
				raw = append(raw, s)
			}
			return false

		case parser.NodeExportNamedDeclaration,
			parser.NodeExportDefaultDeclaration,
			parser.NodeExportAllDeclaration:
			visited[key] = true
			if s, ok := exportFromClause(node, idx); ok {
				raw = append(raw, s)
			}
			// Keep walking: an exported declaration can hide a nested
			// import() or require().
			return true

		case parser.NodeCallExpression:
			visited[key] = true
			if s, ok := dynamicImportCall(node, idx); ok {
				raw = append(raw, s)
			}
			if s, ok := requireCall(node, idx); ok {
				raw = append(raw, s)
			}
		}

		return true
	})

	return raw
}

// importFromClause handles "import ... from 'M'" and the bare side-effect
// form "import 'M'". Both carry their specifier in node.Source; the
// attachment line is the line the source literal sits on, which for the
// "from" form is the line of the "from" clause.
func importFromClause(node *parser.Node, idx *pragma.Index) (string, bool) {
	spec, ok := stringLiteralValue(node.Source)
	if !ok {
		return "", false
	}
	if idx.Suppressed(node.Source.Location.StartLine) {
		return "", false
	}
	return spec, true
}

// exportFromClause handles "export ... from 'M'", "export * from 'M'" and
// "export * as x from 'M'". A bare "export { x };" with no "from" clause
// has a nil Source and emits nothing — it's a declaration, not a
// dependency.
func exportFromClause(node *parser.Node, idx *pragma.Index) (string, bool) {
	if node.Source == nil {
		return "", false
	}
	spec, ok := stringLiteralValue(node.Source)
	if !ok {
		return "", false
	}
	if idx.Suppressed(node.Source.Location.StartLine) {
		return "", false
	}
	return spec, true
}

// dynamicImportCall handles import("M"). The attachment line is the line
// of the call's closing parenthesis, approximated by the call expression's
// own end line (tree-sitter's end point for a call node sits just past the
// closing paren).
func dynamicImportCall(node *parser.Node, idx *pragma.Index) (string, bool) {
	if node.Callee == nil || node.Callee.Type != parser.NodeImportKeyword {
		return "", false
	}
	if len(node.Arguments) == 0 {
		return "", false
	}
	spec, ok := stringLiteralValue(node.Arguments[0])
	if !ok {
		return "", false
	}
	if idx.Suppressed(node.Location.EndLine) {
		return "", false
	}
	return spec, true
}

// requireCall handles require("M"). A `new require(...)` never reaches
// here: tree-sitter's grammar gives new-expressions a distinct node kind
// (NodeNewExpression) with no nested call_expression, so the collector's
// switch on NodeCallExpression can't misfire for it.
func requireCall(node *parser.Node, idx *pragma.Index) (string, bool) {
	if node.Callee == nil || node.Callee.Type != parser.NodeIdentifier || node.Callee.Name != "require" {
		return "", false
	}
	if len(node.Arguments) == 0 {
		return "", false
	}
	spec, ok := stringLiteralValue(node.Arguments[0])
	if !ok {
		return "", false
	}
	if idx.Suppressed(node.Location.EndLine) {
		return "", false
	}
	return spec, true
}

// stringLiteralValue returns the unquoted value of node iff node is a
// string-literal node. Any other node kind — including identifiers, so
// that require(a) is correctly ignored — yields ok=false. This is
// deliberately stricter than a "fall back to the node's name" helper:
// non-string-literal arguments must be silently ignored, not coerced into
// a specifier.
func stringLiteralValue(node *parser.Node) (string, bool) {
	if node == nil || node.Type != parser.NodeStringLiteral {
		return "", false
	}
	raw := node.Raw
	if len(raw) < 2 {
		return "", false
	}
	first, last := raw[0], raw[len(raw)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
		return raw[1 : len(raw)-1], true
	}
	return "", false
}

// nodeLocationKey creates a unique key for a node based on its location, to
// avoid double-processing a node that appears in more than one of the
// parser.Node traversal slices (Children and Body, for instance).
func nodeLocationKey(node *parser.Node) string {
	if node == nil {
		return ""
	}
	return string(node.Type) + ":" + node.Location.String()
}
