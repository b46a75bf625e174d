// Package pyast converts already-parsed Python ASTs (internal/parser.Node,
// produced from smacker/go-tree-sitter's Python grammar) into the
// domain.TreeNode shape the clone-detection engine consumes. Parsing
// source into an AST is the out-of-scope collaborator the engine's spec
// assumes; this package is that collaborator made concrete, adapted from
// the tree-converter this repository's ancestor used for its own
// edit-distance comparisons.
package pyast

import (
	"fmt"

	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/parser"
)

// Converter turns parser.Node trees into domain.TreeNode trees, one call
// per method/function body.
type Converter struct {
	// SkipDocstrings, when true, omits a function/class/module's leading
	// Expr(Constant(str)) docstring statement from its body, matching this
	// repository's ancestor's docstring-skipping converter mode.
	SkipDocstrings bool
}

// NewConverter returns a Converter with docstring skipping enabled, the
// default used when building method trees for clone detection (docstrings
// are prose, not structure, and inflate weight without indicating
// duplication).
func NewConverter() *Converter {
	return &Converter{SkipDocstrings: true}
}

// Convert turns a single parser.Node into a domain.TreeNode, recursively
// converting the nodes in its Children, Body, Orelse, Finalbody and
// Handlers slots, in that order, and skipping a leading docstring
// statement when SkipDocstrings is set. The other slots (Test, Iter, Left,
// Right, Targets, Args, Keywords, Decorator, Bases, and a *parser.Node held
// in Value) are not converted.
func (c *Converter) Convert(astNode *parser.Node, file string) *domain.TreeNode {
	if astNode == nil {
		return nil
	}

	origin := domain.Origin{
		File:   file,
		Line:   astNode.Location.StartLine,
		Column: astNode.Location.StartCol,
	}

	var children []*domain.TreeNode
	for _, child := range astNode.Children {
		if converted := c.Convert(child, file); converted != nil {
			children = append(children, converted)
		}
	}

	canHaveDocstring := canNodeHaveDocstring(astNode.Type)
	for i, bodyNode := range astNode.Body {
		if canHaveDocstring && c.SkipDocstrings && isDocstring(bodyNode, i) {
			continue
		}
		if converted := c.Convert(bodyNode, file); converted != nil {
			children = append(children, converted)
		}
	}
	for _, n := range astNode.Orelse {
		if converted := c.Convert(n, file); converted != nil {
			children = append(children, converted)
		}
	}
	for _, n := range astNode.Finalbody {
		if converted := c.Convert(n, file); converted != nil {
			children = append(children, converted)
		}
	}
	for _, n := range astNode.Handlers {
		if converted := c.Convert(n, file); converted != nil {
			children = append(children, converted)
		}
	}

	return domain.NewTreeNode(nodeLabel(astNode), origin, children...)
}

// ConvertMethods walks a parsed module body looking for top-level and
// nested FunctionDef/AsyncFunctionDef nodes and converts each one's body to
// a domain.TreeNode, building the Module the engine consumes.
func (c *Converter) ConvertMethods(moduleNode *parser.Node, file string) *domain.Module {
	module := &domain.Module{FilePath: file}
	var walk func(n *parser.Node)
	walk = func(n *parser.Node) {
		if n == nil {
			return
		}
		if n.Type == parser.NodeFunctionDef || n.Type == parser.NodeAsyncFunctionDef {
			module.MethodTrees = append(module.MethodTrees, c.Convert(n, file))
		}
		for _, child := range n.GetChildren() {
			walk(child)
		}
	}
	walk(moduleNode)
	return module
}

func canNodeHaveDocstring(t parser.NodeType) bool {
	switch t {
	case parser.NodeModule, parser.NodeClassDef, parser.NodeFunctionDef, parser.NodeAsyncFunctionDef:
		return true
	default:
		return false
	}
}

func isDocstring(n *parser.Node, positionInBody int) bool {
	if positionInBody != 0 || n.Type != parser.NodeExpr || len(n.Children) != 1 {
		return false
	}
	child := n.Children[0]
	if child.Type != parser.NodeConstant || child.Value == nil {
		return false
	}
	_, isString := child.Value.(string)
	return isString
}

// nodeLabel produces the TreeNode.Value label for an AST node: the node
// type, with distinguishing content folded in for the node kinds where
// that content is part of what makes two subtrees the same skeleton
// (identifier names, literal values, operators, definition names).
func nodeLabel(n *parser.Node) string {
	switch n.Type {
	case parser.NodeName:
		if n.Name != "" {
			return fmt.Sprintf("Name(%s)", n.Name)
		}
	case parser.NodeConstant:
		return fmt.Sprintf("Constant(%v)", n.Value)
	case parser.NodeFunctionDef, parser.NodeAsyncFunctionDef:
		if n.Name != "" {
			return fmt.Sprintf("FunctionDef(%s)", n.Name)
		}
	case parser.NodeClassDef:
		if n.Name != "" {
			return fmt.Sprintf("ClassDef(%s)", n.Name)
		}
	case parser.NodeBinOp, parser.NodeUnaryOp, parser.NodeBoolOp:
		if n.Op != "" {
			return fmt.Sprintf("%s(%s)", n.Type, n.Op)
		}
	}
	return string(n.Type)
}
