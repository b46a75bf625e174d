package engine

import "github.com/ludo-technologies/halide/domain"

// leaf builds a childless TreeNode, for use in hand-built fixture trees
// across this package's tests.
func leaf(value, file string, line, col int) *domain.TreeNode {
	return domain.NewTreeNode(value, domain.Origin{File: file, Line: line, Column: col})
}

// node builds a TreeNode with the given children, for use in hand-built
// fixture trees across this package's tests.
func node(value, file string, line, col int, children ...*domain.TreeNode) *domain.TreeNode {
	return domain.NewTreeNode(value, domain.Origin{File: file, Line: line, Column: col}, children...)
}

// repeatLeaves builds n identical leaves sharing value but distinct
// origins (so they remain distinguishable occurrences), useful for padding
// a fixture tree out to a target weight.
func repeatLeaves(value, file string, n, startLine int) []*domain.TreeNode {
	out := make([]*domain.TreeNode, n)
	for i := 0; i < n; i++ {
		out[i] = leaf(value, file, startLine+i, 0)
	}
	return out
}
