package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/config"
)

// buildS4Trees builds the two 25-node method bodies from scenario S4: 23
// shared leaves plus one diverging leaf (weight 1 each side).
func buildS4Trees(divergentA, divergentB *domain.TreeNode) (*domain.TreeNode, *domain.TreeNode) {
	childrenA := append(repeatLeaves("Stmt", "a.py", 23, 2), divergentA)
	childrenB := append(repeatLeaves("Stmt", "b.py", 23, 2), divergentB)
	t1 := node("Block", "a.py", 1, 0, childrenA...)
	t2 := node("Block", "b.py", 1, 0, childrenB...)
	return t1, t2
}

func TestRunIodine_OneHole(t *testing.T) {
	divergentA := leaf("Constant(1)", "a.py", 30, 4)
	divergentB := leaf("Constant(2)", "b.py", 30, 4)
	t1, t2 := buildS4Trees(divergentA, divergentB)

	require.Equal(t, 25, t1.Weight)
	require.Equal(t, 25, t2.Weight)

	repoA := domain.Repository{{FilePath: "a.py", MethodTrees: []*domain.TreeNode{t1}}}
	repoB := domain.Repository{{FilePath: "b.py", MethodTrees: []*domain.TreeNode{t2}}}

	cfg := config.IodineConfig{MinNodes: 20, MaxHoles: 1, HoleMassLimit: 5, HolesPredicate: config.HolesPredicateAtMost}

	result := RunIodine(repoA, repoB, cfg)

	require.Len(t, result.Clones, 1)
	clone := result.Clones[0]
	assert.Equal(t, 24, clone.MatchWeight)
	assert.Equal(t, 2, clone.Origins.Len())

	for pair := clone.Origins.Oldest(); pair != nil; pair = pair.Next() {
		assert.InDelta(t, 24.0/25.0, pair.Value, 1e-9)
	}
}

func TestRunIodine_HoleTooBig(t *testing.T) {
	divergentA := node("Big", "a.py", 30, 4, repeatLeaves("Inner", "a.py", 9, 31)...)
	divergentB := node("Different", "b.py", 30, 4, repeatLeaves("Inner", "b.py", 9, 31)...)
	t1, t2 := buildS4Trees(divergentA, divergentB)

	repoA := domain.Repository{{FilePath: "a.py", MethodTrees: []*domain.TreeNode{t1}}}
	repoB := domain.Repository{{FilePath: "b.py", MethodTrees: []*domain.TreeNode{t2}}}

	cfg := config.IodineConfig{MinNodes: 20, MaxHoles: 1, HoleMassLimit: 5, HolesPredicate: config.HolesPredicateAtMost}

	result := RunIodine(repoA, repoB, cfg)

	assert.Empty(t, result.Clones)
}

func TestRunIodine_SimilarityBounds(t *testing.T) {
	divergentA := leaf("Constant(1)", "a.py", 30, 4)
	divergentB := leaf("Constant(2)", "b.py", 30, 4)
	t1, t2 := buildS4Trees(divergentA, divergentB)

	repoA := domain.Repository{{FilePath: "a.py", MethodTrees: []*domain.TreeNode{t1}}}
	repoB := domain.Repository{{FilePath: "b.py", MethodTrees: []*domain.TreeNode{t2}}}

	cfg := config.DefaultIodineConfig()
	cfg.MinNodes = 20
	cfg.MaxHoles = 1

	result := RunIodine(repoA, repoB, cfg)
	require.Len(t, result.Clones, 1)

	for pair := result.Clones[0].Origins.Oldest(); pair != nil; pair = pair.Next() {
		assert.Greater(t, pair.Value, 0.0)
		assert.LessOrEqual(t, pair.Value, 1.0)
	}
}
