package engine

import (
	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/config"
)

// RunIodine detects approximate duplicates across two repositories by
// pairwise anti-unification with bit-indexed work suppression (spec §4.7).
// Method pairs are taken from the full Cartesian product of repoA's and
// repoB's methods, in module-then-method encounter order; each method
// pair's admitted, clustered patterns are appended to the result in turn,
// giving the (i, j) lexicographic ordering the output contract requires
// (spec §5).
func RunIodine(repoA, repoB domain.Repository, cfg config.IodineConfig) *domain.DetectionResult {
	result := domain.NewDetectionResult(domain.AlgorithmIodine)

	methodsA := allMethodTrees(repoA)
	methodsB := allMethodTrees(repoB)

	for _, t1root := range methodsA {
		for _, t2root := range methodsB {
			result.Clones = append(result.Clones, detectPairClones(t1root, t2root, cfg)...)
		}
	}

	return result
}

func allMethodTrees(repo domain.Repository) []*domain.TreeNode {
	var out []*domain.TreeNode
	for _, module := range repo {
		out = append(out, module.MethodTrees...)
	}
	return out
}

// detectPairClones runs the §4.7 sweep for one method pair and returns the
// resulting DetectedClones, in bucket-by-i then clustered-first-occurrence
// order.
func detectPairClones(t1root, t2root *domain.TreeNode, cfg config.IodineConfig) []*domain.DetectedClone {
	t1 := domain.Flatten(t1root)
	t2 := domain.Flatten(t2root)

	bitmap := NewWorkBitmap(len(t1), len(t2))
	buckets := make(map[int][]*PatternNode)
	bucketOrder := []int{}

	for i := range t1 {
		for j := range t2 {
			if t1[i].IsLeaf() || t2[j].IsLeaf() {
				continue
			}
			if bitmap.IsSet(i, j) {
				continue
			}
			bitmap.Set(i, j)

			if !t1[i].SameShape(t2[j]) {
				continue
			}

			au := AntiUnify(t1, t2, i, j, bitmap)
			if !admitPattern(au, cfg) {
				continue
			}

			if _, ok := buckets[i]; !ok {
				bucketOrder = append(bucketOrder, i)
			}
			buckets[i] = append(buckets[i], au.Pattern)
		}
	}

	var clones []*domain.DetectedClone
	for _, i := range bucketOrder {
		for _, pattern := range ClusterPatterns(buckets[i]) {
			clones = append(clones, patternToDetectedClone(pattern))
		}
	}
	return clones
}

// admitPattern applies the three admission predicates from spec §4.7 and
// §9 (the MAX_HOLES comparison direction is configurable; see
// config.HolesPredicate).
func admitPattern(au *AntiUnifyResult, cfg config.IodineConfig) bool {
	if au.Pattern.MatchWeight() < cfg.MinNodes {
		return false
	}
	if !cfg.HolesPredicate.Admits(au.Holes, cfg.MaxHoles) {
		return false
	}
	if au.MaxHoleMass > cfg.HoleMassLimit {
		return false
	}
	return true
}

// patternToDetectedClone converts an admitted, clustered PatternNode into
// its terminal DetectedClone form, with origins[o] = match_weight /
// weight(o) for each origin (spec §4.7 step 4).
func patternToDetectedClone(p *PatternNode) *domain.DetectedClone {
	matchWeight := p.MatchWeight()
	clone := domain.NewDetectedClone(p.Value, matchWeight)
	for _, origin := range p.Origins {
		key := origin.Origin.String()
		if _, present := clone.Origins.Get(key); present {
			continue
		}
		clone.Origins.Set(key, float64(matchWeight)/float64(origin.Weight))
	}
	return clone
}
