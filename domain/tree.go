package domain

import (
	"fmt"
	"hash/fnv"
)

// Origin identifies the source position of the root of a TreeNode's surface
// syntax. It is a small value record, freely copied, per spec §9.
type Origin struct {
	File   string
	Line   int
	Column int
}

// String renders the canonical "file:line:col" form used as the JSON key
// for a DetectedClone origin (spec §6).
func (o Origin) String() string {
	return fmt.Sprintf("%s:%d:%d", o.File, o.Line, o.Column)
}

// TreeNode is a node of a parsed method AST, as consumed by the engine.
// Parsing source into TreeNodes is an out-of-scope collaborator's job
// (spec §1); this module only ever reads these fields.
//
// weight and skeletonHash are computed once, bottom-up, at construction and
// never change afterwards (spec §3 invariants).
type TreeNode struct {
	// Value is the syntactic-kind-plus-normalized-literal label. Equality
	// of this string is the notion of equality used for skeletal
	// comparison (spec §3).
	Value string

	// Children is ordered; order is significant throughout the engine.
	Children []*TreeNode

	// Origin is the source position of this node, carried verbatim.
	Origin Origin

	// Weight is 1 + the sum of the weights of all descendants.
	Weight int

	// SkeletonHash is a content hash over (Value, child hashes...),
	// computed once. Its collision probability is treated as negligible
	// (spec §3); Equal additionally checks structural equality as a
	// tiebreak on collision.
	SkeletonHash uint64

	// Index is this node's position when the owning tree is flattened by
	// Flatten. It is -1 until Flatten assigns it.
	Index int
}

// NewTreeNode constructs a TreeNode, computing its weight and skeleton hash
// from the already-constructed children. Children must themselves have been
// built with NewTreeNode (or otherwise have correct Weight/SkeletonHash
// fields) since weight and hash are derived bottom-up and never
// recalculated later.
func NewTreeNode(value string, origin Origin, children ...*TreeNode) *TreeNode {
	n := &TreeNode{
		Value:    value,
		Children: children,
		Origin:   origin,
		Index:    -1,
	}
	n.Weight = 1
	h := fnv.New64a()
	_, _ = h.Write([]byte(value))
	for _, c := range children {
		n.Weight += c.Weight
		writeHashUint64(h, c.SkeletonHash)
	}
	n.SkeletonHash = h.Sum64()
	return n
}

// writeHashUint64 folds a child's hash into the running hash of its parent,
// keeping position significant (two nodes with the same children in a
// different order hash differently).
func writeHashUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(b[:])
}

// IsLeaf reports whether this node has no children.
func (t *TreeNode) IsLeaf() bool {
	return len(t.Children) == 0
}

// Equal implements the equality notion from spec §4.1: skeleton_hash
// equality, tie-broken by recursive structural equality so a hash
// collision never silently produces a wrong answer. Algorithms that
// treat hash equality alone as sufficient (per spec §4.1) can compare
// SkeletonHash directly instead of calling Equal.
func (t *TreeNode) Equal(other *TreeNode) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.SkeletonHash != other.SkeletonHash {
		return false
	}
	return t.structurallyEqual(other)
}

func (t *TreeNode) structurallyEqual(other *TreeNode) bool {
	if t.Value != other.Value || len(t.Children) != len(other.Children) {
		return false
	}
	for i, c := range t.Children {
		if !c.structurallyEqual(other.Children[i]) {
			return false
		}
	}
	return true
}

// SameShape reports whether two nodes have the same value and the same
// number of children, without looking any deeper. This is the "equal
// value, equal arity" check anti-unification uses to decide whether to
// recurse into a child pair or turn it into a hole (spec §4.3 step 3).
func (t *TreeNode) SameShape(other *TreeNode) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Value == other.Value && len(t.Children) == len(other.Children)
}

// Flatten walks root in preorder (root before children, children
// left-to-right) and returns the resulting list, assigning each node's
// Index to its position in that list as a side effect (spec §3, §4.1).
func Flatten(root *TreeNode) []*TreeNode {
	if root == nil {
		return nil
	}
	var out []*TreeNode
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		n.Index = len(out)
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}
