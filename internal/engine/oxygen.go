package engine

import "github.com/ludo-technologies/halide/domain"

// RunOxygen detects exact duplicates within a single repository by subtree
// skeleton hash (spec §4.5). Every subtree across every method whose
// weight is at least minNodes is grouped by skeleton_hash; each group of
// two or more members becomes one DetectedClone with similarity 1.0 for
// every origin.
//
// Both a parent and a child subtree may be reported independently
// (spec §4.5 "nested duplicates" — intentionally not suppressed here).
func RunOxygen(repo domain.Repository, minNodes int) *domain.DetectionResult {
	result := domain.NewDetectionResult(domain.AlgorithmOxygen)
	result.Clones = exactDuplicateClones(groupSkeletonHashes(repo, nil, minNodes))
	return result
}

// skeletonGroup is one skeleton_hash equivalence class accumulated by
// Oxygen and Chlorine, in encounter order. repoTag records which repo(s)
// (0 or 1) each member came from so Chlorine's cross-repo constraint can be
// checked without re-walking the trees.
type skeletonGroup struct {
	value    string
	members  []*domain.TreeNode
	repoTags []int
}

// groupSkeletonHashes walks repoA (and, if non-nil, repoB) in module order
// then preorder within each method, grouping every subtree whose weight is
// at least minNodes by skeleton_hash (spec §4.5). Encounter order is
// preserved so output ordering matches the "preserve encounter order"
// guarantee in spec §5.
func groupSkeletonHashes(repoA, repoB domain.Repository, minNodes int) []*skeletonGroup {
	order := []uint64{}
	groups := map[uint64]*skeletonGroup{}

	walk := func(repo domain.Repository, tag int) {
		for _, module := range repo {
			for _, root := range module.MethodTrees {
				for _, n := range domain.Flatten(root) {
					if n.Weight < minNodes {
						continue
					}
					g, ok := groups[n.SkeletonHash]
					if !ok {
						g = &skeletonGroup{value: n.Value}
						groups[n.SkeletonHash] = g
						order = append(order, n.SkeletonHash)
					}
					g.members = append(g.members, n)
					g.repoTags = append(g.repoTags, tag)
				}
			}
		}
	}

	walk(repoA, 0)
	if repoB != nil {
		walk(repoB, 1)
	}

	out := make([]*skeletonGroup, 0, len(order))
	for _, hash := range order {
		out = append(out, groups[hash])
	}
	return out
}

// exactDuplicateClones converts skeleton-hash groups of size ≥ 2 into
// DetectedClones with similarity 1.0 for every origin (spec §4.5, §4.6).
func exactDuplicateClones(groups []*skeletonGroup) []*domain.DetectedClone {
	clones := []*domain.DetectedClone{}
	for _, g := range groups {
		if len(g.members) < 2 {
			continue
		}
		clone := domain.NewDetectedClone(g.value, g.members[0].Weight)
		for _, m := range g.members {
			clone.Origins.Set(m.Origin.String(), 1.0)
		}
		clones = append(clones, clone)
	}
	return clones
}
