// Package engine implements the three clone-detection algorithms (Oxygen,
// Chlorine, Iodine), the anti-unification procedure and pattern clustering
// they share, and the runner that dispatches between them.
package engine

import "github.com/ludo-technologies/halide/domain"

// HoleValue is the sentinel value a PatternNode carries at a position where
// its two origin subtrees diverged (spec §4.2, §4.3).
const HoleValue = "Hole"

// PatternNode is a node of a common skeleton extracted from two or more
// TreeNodes by anti-unification (spec §3, §4.2). It lives only inside an
// algorithm invocation; once converted to a DetectedClone it and the
// TreeNodes it references may be dropped together.
type PatternNode struct {
	Value    string
	Children []*PatternNode

	// Origins holds the TreeNodes this pattern node was built from — at
	// least two at construction, more after clustering merges equivalent
	// patterns. PatternNodes only ever read Value/Weight/Origin from these;
	// they never mutate them.
	Origins []*domain.TreeNode
}

// NewPatternNode constructs a PatternNode from two origin TreeNodes. value
// defaults to HoleValue when empty, matching the original's
// `value = value or "Hole"` (spec §4.2).
func NewPatternNode(n1, n2 *domain.TreeNode, value string) *PatternNode {
	if value == "" {
		value = HoleValue
	}
	return &PatternNode{
		Value:   value,
		Origins: []*domain.TreeNode{n1, n2},
	}
}

// NewHole constructs a PatternNode standing in for a diverging position:
// value Hole, origins {a, b}, no children (spec §4.3 step 3).
func NewHole(a, b *domain.TreeNode) *PatternNode {
	return NewPatternNode(a, b, HoleValue)
}

// IsHole reports whether this pattern node is a divergence placeholder.
func (p *PatternNode) IsHole() bool {
	return p.Value == HoleValue
}

// AddOrigins extends this pattern node's origin set (spec §4.2 add_origins).
func (p *PatternNode) AddOrigins(nodes ...*domain.TreeNode) {
	p.Origins = append(p.Origins, nodes...)
}

// AddChildren appends children in order (spec §4.2 add_children). Arity
// validation against the origin TreeNodes' arity is the caller's
// responsibility during construction; by the time a pattern is complete its
// children slice already reflects the correct arity.
func (p *PatternNode) AddChildren(children ...*PatternNode) {
	p.Children = append(p.Children, children...)
}

// MatchWeight is the count of non-hole nodes in the pattern (spec §3,
// §4.2 get_match_weight), counted over this node and its descendants.
func (p *PatternNode) MatchWeight() int {
	weight := 0
	if !p.IsHole() {
		weight = 1
	}
	for _, c := range p.Children {
		weight += c.MatchWeight()
	}
	return weight
}

// HoleCount is the number of Hole nodes anywhere in the pattern.
func (p *PatternNode) HoleCount() int {
	count := 0
	if p.IsHole() {
		count = 1
	}
	for _, c := range p.Children {
		count += c.HoleCount()
	}
	return count
}

// MaxHoleMass is the maximum weight among all origin-subtrees replaced by
// any hole in the pattern (spec §3). A pattern with no holes has max hole
// mass 0.
func (p *PatternNode) MaxHoleMass() int {
	max := 0
	if p.IsHole() {
		for _, o := range p.Origins {
			if o.Weight > max {
				max = o.Weight
			}
		}
	}
	for _, c := range p.Children {
		if m := c.MaxHoleMass(); m > max {
			max = m
		}
	}
	return max
}

// SkeletonEquals is the equivalence relation pattern clustering partitions
// by (spec §4.4): equal value, equal arity, and recursively equal children.
func (p *PatternNode) SkeletonEquals(other *PatternNode) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Value != other.Value || len(p.Children) != len(other.Children) {
		return false
	}
	for i, c := range p.Children {
		if !c.SkeletonEquals(other.Children[i]) {
			return false
		}
	}
	return true
}

// structuralKey is a cheap, order-sensitive string summary of a pattern's
// shape, used to bucket patterns before the O(n^2) SkeletonEquals
// comparison is needed (spec §4.4 permits memoizing by a canonical
// structural hash to achieve linear-time bucketing).
func (p *PatternNode) structuralKey() string {
	key := p.Value + "("
	for _, c := range p.Children {
		key += c.structuralKey() + ","
	}
	return key + ")"
}
