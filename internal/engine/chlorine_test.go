package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ludo-technologies/halide/domain"
)

func TestRunChlorineSingleRepo_MirrorsOxygen(t *testing.T) {
	m1, m2 := s1Methods("a.py")
	repo := domain.Repository{
		{FilePath: "a.py", MethodTrees: []*domain.TreeNode{m1, m2}},
	}

	oxygenResult := RunOxygen(repo, 3)
	chlorineResult := RunChlorineSingleRepo(repo, 3)

	assert.Equal(t, len(oxygenResult.Clones), len(chlorineResult.Clones))
	assert.Equal(t, oxygenResult.Clones[0].Value, chlorineResult.Clones[0].Value)
	assert.Equal(t, oxygenResult.Clones[0].MatchWeight, chlorineResult.Clones[0].MatchWeight)
	assert.Equal(t, domain.AlgorithmChlorine, chlorineResult.Algorithm)
}

// TestRunChlorineTwoRepos_CrossRepoOnly is scenario S3: repo A has three
// identical methods M, repo B has none like M. Pure-A duplicates are not
// reported cross-repo.
func TestRunChlorineTwoRepos_CrossRepoOnly(t *testing.T) {
	methodM := func(line int) *domain.TreeNode {
		return node("Block", "a.py", line, 0,
			leaf("Assign(x,1)", "a.py", line+1, 4),
			node("Return", "a.py", line+2, 4, leaf("Name(x)", "a.py", line+2, 11)),
		)
	}

	repoA := domain.Repository{
		{FilePath: "a.py", MethodTrees: []*domain.TreeNode{methodM(1), methodM(10), methodM(20)}},
	}
	repoB := domain.Repository{
		{FilePath: "b.py", MethodTrees: []*domain.TreeNode{
			node("Block", "b.py", 1, 0, leaf("Pass", "b.py", 2, 4)),
		}},
	}

	result := RunChlorineTwoRepos(repoA, repoB, 3)

	assert.Empty(t, result.Clones)
}

func TestRunChlorineTwoRepos_ReportsSharedDuplicate(t *testing.T) {
	methodM := func(file string, line int) *domain.TreeNode {
		return node("Block", file, line, 0,
			leaf("Assign(x,1)", file, line+1, 4),
			node("Return", file, line+2, 4, leaf("Name(x)", file, line+2, 11)),
		)
	}

	repoA := domain.Repository{{FilePath: "a.py", MethodTrees: []*domain.TreeNode{methodM("a.py", 1)}}}
	repoB := domain.Repository{{FilePath: "b.py", MethodTrees: []*domain.TreeNode{methodM("b.py", 1)}}}

	result := RunChlorineTwoRepos(repoA, repoB, 3)

	assert.Len(t, result.Clones, 1)
	assert.Equal(t, 2, result.Clones[0].Origins.Len())
}
