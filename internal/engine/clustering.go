package engine

// ClusterPatterns partitions patterns by the SkeletonEquals equivalence
// relation (spec §4.4). Each class of size ≥ 2 is merged into a single
// representative whose Origins is the union of every member's origins;
// classes of size 1 pass through unchanged. Output order is the order of
// first occurrence of each class in the input.
//
// Patterns are first bucketed by a cheap structural key so most
// comparisons never fall back to the O(n^2) SkeletonEquals check (spec
// §4.4 permits this memoization).
func ClusterPatterns(patterns []*PatternNode) []*PatternNode {
	type bucket struct {
		key  string
		reps []*PatternNode
	}

	order := []string{}
	buckets := map[string]*bucket{}

	for _, p := range patterns {
		key := p.structuralKey()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key}
			buckets[key] = b
			order = append(order, key)
		}

		merged := false
		for _, rep := range b.reps {
			if rep.SkeletonEquals(p) {
				rep.AddOrigins(p.Origins...)
				merged = true
				break
			}
		}
		if !merged {
			b.reps = append(b.reps, p)
		}
	}

	out := make([]*PatternNode, 0, len(patterns))
	for _, key := range order {
		out = append(out, buckets[key].reps...)
	}
	return out
}
