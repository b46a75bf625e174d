package engine

import "github.com/ludo-technologies/halide/domain"

// RunChlorineSingleRepo detects exact duplicates within a single repository,
// mirroring Oxygen's contract exactly (spec §4.6 "Single-repo Chlorine is
// defined and mirrors Oxygen's contract").
func RunChlorineSingleRepo(repo domain.Repository, minNodes int) *domain.DetectionResult {
	result := domain.NewDetectionResult(domain.AlgorithmChlorine)
	result.Clones = exactDuplicateClones(groupSkeletonHashes(repo, nil, minNodes))
	return result
}

// RunChlorineTwoRepos detects exact duplicates across two repositories by
// subtree skeleton hash (spec §4.6): as Oxygen, but a group is only
// reported if it contains at least one member from each repo.
func RunChlorineTwoRepos(repoA, repoB domain.Repository, minNodes int) *domain.DetectionResult {
	result := domain.NewDetectionResult(domain.AlgorithmChlorine)

	groups := groupSkeletonHashes(repoA, repoB, minNodes)
	crossRepo := make([]*skeletonGroup, 0, len(groups))
	for _, g := range groups {
		if hasBothRepoTags(g.repoTags) {
			crossRepo = append(crossRepo, g)
		}
	}
	result.Clones = exactDuplicateClones(crossRepo)
	return result
}

func hasBothRepoTags(tags []int) bool {
	seenA, seenB := false, false
	for _, t := range tags {
		if t == 0 {
			seenA = true
		} else {
			seenB = true
		}
	}
	return seenA && seenB
}
