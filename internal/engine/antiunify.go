package engine

import "github.com/ludo-technologies/halide/domain"

// AntiUnifyResult bundles the outputs of one anti-unification call (spec
// §4.3): the extracted pattern plus its hole statistics, which the caller
// checks against the admission thresholds without having to re-walk the
// pattern tree.
type AntiUnifyResult struct {
	Pattern     *PatternNode
	Holes       int
	MaxHoleMass int
}

// AntiUnify extracts the common skeleton of two TreeNodes whose flattened
// positions are (t1, i) and (t2, j), recording every descendant pair it
// visits in bitmap so the outer sweep in iodine.go does not re-seed from
// them independently (spec §4.3).
//
// Iodine's sweep calls this only for root pairs with the same value and
// arity (TreeNode.SameShape); AntiUnify itself re-checks arity at each
// level, falling back to a Hole otherwise.
func AntiUnify(t1, t2 []*domain.TreeNode, i, j int, bitmap *WorkBitmap) *AntiUnifyResult {
	a, b := t1[i], t2[j]
	bitmap.Set(i, j)

	if len(a.Children) != len(b.Children) {
		mass := a.Weight
		if b.Weight > mass {
			mass = b.Weight
		}
		return &AntiUnifyResult{Pattern: NewHole(a, b), Holes: 1, MaxHoleMass: mass}
	}

	pattern := NewPatternNode(a, b, a.Value)
	holes := 0
	maxHoleMass := 0

	for k := range a.Children {
		childA, childB := a.Children[k], b.Children[k]
		if childA.Value == childB.Value && len(childA.Children) == len(childB.Children) {
			childI, childJ := indexOf(t1, childA), indexOf(t2, childB)
			sub := AntiUnify(t1, t2, childI, childJ, bitmap)
			pattern.AddChildren(sub.Pattern)
			holes += sub.Holes
			if sub.MaxHoleMass > maxHoleMass {
				maxHoleMass = sub.MaxHoleMass
			}
			continue
		}

		hole := NewHole(childA, childB)
		pattern.AddChildren(hole)
		holes++
		mass := childA.Weight
		if childB.Weight > mass {
			mass = childB.Weight
		}
		if mass > maxHoleMass {
			maxHoleMass = mass
		}
	}

	return &AntiUnifyResult{Pattern: pattern, Holes: holes, MaxHoleMass: maxHoleMass}
}

// indexOf returns n.Index, which Flatten already assigned. Child nodes
// passed to AntiUnify always come from an already-flattened tree, so Index
// is always valid; this helper exists only to make that assumption visible
// at each call site.
func indexOf(_ []*domain.TreeNode, n *domain.TreeNode) int {
	return n.Index
}
