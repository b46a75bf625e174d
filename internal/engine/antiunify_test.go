package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/halide/domain"
)

func TestAntiUnify_IdenticalSubtrees(t *testing.T) {
	t1 := domain.Flatten(node("Block", "a.py", 1, 0, leaf("Name(x)", "a.py", 2, 0), leaf("Name(y)", "a.py", 3, 0)))
	t2 := domain.Flatten(node("Block", "b.py", 1, 0, leaf("Name(x)", "b.py", 2, 0), leaf("Name(y)", "b.py", 3, 0)))

	bitmap := NewWorkBitmap(len(t1), len(t2))
	result := AntiUnify(t1, t2, 0, 0, bitmap)

	assert.Equal(t, 0, result.Holes)
	assert.Equal(t, 0, result.MaxHoleMass)
	assert.Equal(t, 3, result.Pattern.MatchWeight())
	assert.True(t, bitmap.IsSet(0, 0))
}

func TestAntiUnify_ArityMismatchFallsBackToHole(t *testing.T) {
	t1 := domain.Flatten(node("Block", "a.py", 1, 0, leaf("Name(x)", "a.py", 2, 0)))
	t2 := domain.Flatten(node("Block", "b.py", 1, 0, leaf("Name(x)", "b.py", 2, 0), leaf("Name(y)", "b.py", 3, 0)))

	bitmap := NewWorkBitmap(len(t1), len(t2))
	result := AntiUnify(t1, t2, 0, 0, bitmap)

	require.True(t, result.Pattern.IsHole())
	assert.Equal(t, 1, result.Holes)
	assert.Equal(t, t2[0].Weight, result.MaxHoleMass)
}

func TestAntiUnify_MarksDescendantPairsVisited(t *testing.T) {
	t1 := domain.Flatten(node("Block", "a.py", 1, 0, leaf("Name(x)", "a.py", 2, 0)))
	t2 := domain.Flatten(node("Block", "b.py", 1, 0, leaf("Name(x)", "b.py", 2, 0)))

	bitmap := NewWorkBitmap(len(t1), len(t2))
	AntiUnify(t1, t2, 0, 0, bitmap)

	assert.True(t, bitmap.IsSet(0, 0))
	assert.True(t, bitmap.IsSet(1, 1))
}
