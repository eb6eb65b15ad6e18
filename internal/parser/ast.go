package parser

import "fmt"

// NodeType identifies the syntactic category of an AST node.
type NodeType string

// Node types actually produced by ASTBuilder. The set intentionally covers
// every JavaScript construct that can contain a nested import(), require(),
// or import/export declaration — function bodies, control flow, try/catch —
// since the collector walks the whole tree looking for those regardless of
// where they're nested.
const (
	NodeProgram NodeType = "Program"

	NodeFunction           NodeType = "FunctionDeclaration"
	NodeFunctionExpression NodeType = "FunctionExpression"
	NodeArrowFunction      NodeType = "ArrowFunctionExpression"
	NodeGeneratorFunction  NodeType = "GeneratorFunctionDeclaration"
	NodeMethodDefinition   NodeType = "MethodDefinition"

	NodeClass NodeType = "ClassDeclaration"

	NodeVariableDeclaration NodeType = "VariableDeclaration"
	NodeIdentifier          NodeType = "Identifier"

	NodeIfStatement       NodeType = "IfStatement"
	NodeSwitchStatement   NodeType = "SwitchStatement"
	NodeCaseClause        NodeType = "SwitchCase"
	NodeDefaultClause     NodeType = "SwitchDefault"
	NodeForStatement      NodeType = "ForStatement"
	NodeForInStatement    NodeType = "ForInStatement"
	NodeForOfStatement    NodeType = "ForOfStatement"
	NodeWhileStatement    NodeType = "WhileStatement"
	NodeDoWhileStatement  NodeType = "DoWhileStatement"
	NodeBreakStatement    NodeType = "BreakStatement"
	NodeContinueStatement NodeType = "ContinueStatement"
	NodeReturnStatement   NodeType = "ReturnStatement"
	NodeThrowStatement    NodeType = "ThrowStatement"

	NodeTryStatement  NodeType = "TryStatement"
	NodeCatchClause   NodeType = "CatchClause"
	NodeFinallyClause NodeType = "FinallyClause"

	NodeCallExpression        NodeType = "CallExpression"
	NodeMemberExpression      NodeType = "MemberExpression"
	NodeBinaryExpression      NodeType = "BinaryExpression"
	NodeUnaryExpression       NodeType = "UnaryExpression"
	NodeConditionalExpression NodeType = "ConditionalExpression"
	NodeAssignmentExpression  NodeType = "AssignmentExpression"
	NodeUpdateExpression      NodeType = "UpdateExpression"
	NodeNewExpression         NodeType = "NewExpression"
	NodeAwaitExpression       NodeType = "AwaitExpression"
	NodeYieldExpression       NodeType = "YieldExpression"

	NodeLiteral        NodeType = "Literal"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeNumberLiteral  NodeType = "NumberLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeNullLiteral    NodeType = "NullLiteral"

	NodeImportDeclaration        NodeType = "ImportDeclaration"
	NodeExportNamedDeclaration   NodeType = "ExportNamedDeclaration"
	NodeExportDefaultDeclaration NodeType = "ExportDefaultDeclaration"
	NodeExportAllDeclaration     NodeType = "ExportAllDeclaration"

	// NodeImportKeyword is the callee type tree-sitter assigns to the bare
	// "import" keyword used as a call target in a dynamic import expression,
	// e.g. the callee of import("./x.js").
	NodeImportKeyword NodeType = "import"

	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
)

// Location is a source position, file-qualified so it reads standalone in
// error messages.
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node is one AST node. Fields are a union across every node kind
// ASTBuilder produces; most are nil/zero for any given node's type.
type Node struct {
	Type     NodeType
	Children []*Node
	Location Location
	Parent   *Node

	Name string

	Params    []*Node
	Body      []*Node
	Generator bool

	Test       *Node
	Consequent *Node
	Alternate  *Node
	Init       *Node
	Update     *Node
	Cases      []*Node

	Handler   *Node
	Finalizer *Node

	Left      *Node
	Right     *Node
	Argument  *Node
	Arguments []*Node
	Callee    *Node
	Object    *Node
	Property  *Node

	Declarations []*Node

	Source      *Node
	Declaration *Node

	Raw string
}

// NewNode allocates a Node of the given type with its slice fields ready to
// append to.
func NewNode(nodeType NodeType) *Node {
	return &Node{
		Type:         nodeType,
		Children:     []*Node{},
		Params:       []*Node{},
		Body:         []*Node{},
		Cases:        []*Node{},
		Arguments:    []*Node{},
		Declarations: []*Node{},
	}
}

// AddChild appends child to n's Children, wiring its Parent back to n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk traverses the tree depth-first across every field that can hold a
// subtree, invoking visitor on each node. Returning false from visitor
// prunes that node's subtree.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}

	if !visitor(n) {
		return
	}

	for _, child := range n.Children {
		child.Walk(visitor)
	}
	for _, param := range n.Params {
		param.Walk(visitor)
	}
	for _, stmt := range n.Body {
		stmt.Walk(visitor)
	}
	for _, caseNode := range n.Cases {
		caseNode.Walk(visitor)
	}
	for _, arg := range n.Arguments {
		arg.Walk(visitor)
	}
	for _, decl := range n.Declarations {
		decl.Walk(visitor)
	}

	n.Test.Walk(visitor)
	n.Consequent.Walk(visitor)
	n.Alternate.Walk(visitor)
	n.Init.Walk(visitor)
	n.Update.Walk(visitor)
	n.Handler.Walk(visitor)
	n.Finalizer.Walk(visitor)
	n.Left.Walk(visitor)
	n.Right.Walk(visitor)
	n.Argument.Walk(visitor)
	n.Callee.Walk(visitor)
	n.Object.Walk(visitor)
	n.Property.Walk(visitor)
	n.Source.Walk(visitor)
	n.Declaration.Walk(visitor)
}

func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s) at %s", n.Type, n.Name, n.Location)
	}
	return fmt.Sprintf("%s at %s", n.Type, n.Location)
}

// IsFunction reports whether n is any kind of function node.
func (n *Node) IsFunction() bool {
	switch n.Type {
	case NodeFunction, NodeArrowFunction, NodeGeneratorFunction,
		NodeFunctionExpression, NodeMethodDefinition:
		return true
	}
	return false
}
