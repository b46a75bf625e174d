package engine

import (
	"fmt"

	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/config"
)

// RunSingleRepo dispatches a single-repo analysis to the requested
// algorithm (spec §4.8). Oxygen and Chlorine are supported; Iodine is not
// and is rejected with a UserInputError.
func RunSingleRepo(repo domain.Repository, algorithm domain.AlgorithmID, cfg config.IodineConfig) (*domain.DetectionResult, error) {
	if repo.IsEmpty() {
		return nil, domain.NewUserInputError("cannot run analysis on an empty repository")
	}

	switch algorithm {
	case domain.AlgorithmOxygen:
		return RunOxygen(repo, cfg.MinNodes), nil
	case domain.AlgorithmChlorine:
		return RunChlorineSingleRepo(repo, cfg.MinNodes), nil
	case domain.AlgorithmIodine:
		return nil, domain.NewUserInputError("iodine does not support single-repo analysis")
	default:
		return nil, domain.NewUserInputError(fmt.Sprintf("unknown algorithm %q", algorithm))
	}
}

// RunTwoRepos dispatches a two-repo analysis to the requested algorithm
// (spec §4.8). Chlorine and Iodine are supported; Oxygen is not and is
// rejected with a UserInputError.
func RunTwoRepos(repoA, repoB domain.Repository, algorithm domain.AlgorithmID, cfg config.IodineConfig) (*domain.DetectionResult, error) {
	if repoA.IsEmpty() || repoB.IsEmpty() {
		return nil, domain.NewUserInputError("cannot run analysis on an empty repository")
	}

	switch algorithm {
	case domain.AlgorithmOxygen:
		return nil, domain.NewUserInputError("oxygen does not support two-repo analysis")
	case domain.AlgorithmChlorine:
		return RunChlorineTwoRepos(repoA, repoB, cfg.MinNodes), nil
	case domain.AlgorithmIodine:
		return RunIodine(repoA, repoB, cfg), nil
	default:
		return nil, domain.NewUserInputError(fmt.Sprintf("unknown algorithm %q", algorithm))
	}
}
