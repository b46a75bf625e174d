package service

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/config"
	"github.com/ludo-technologies/halide/internal/discover"
	"github.com/ludo-technologies/halide/internal/engine"
	"github.com/ludo-technologies/halide/internal/parser"
	"github.com/ludo-technologies/halide/internal/pyast"
)

// DetectionService implements domain.DetectionService: it discovers Python
// files, parses them into method trees, and dispatches the resulting
// repositories to internal/engine's runner.
type DetectionService struct {
	// ShowProgress enables a progress bar while parsing files, suppressed
	// automatically when stdout is not a terminal.
	ShowProgress bool
}

// NewDetectionService constructs a DetectionService.
func NewDetectionService() *DetectionService {
	return &DetectionService{ShowProgress: true}
}

// Detect implements domain.DetectionService.
func (s *DetectionService) Detect(ctx context.Context, req *domain.DetectRequest) (*domain.DetectionResult, error) {
	runID := uuid.New()
	log.Printf("detect[%s]: algorithm=%s repos=%d", runID, req.Algorithm, req.RepoCount())

	if err := domain.ValidateAlgorithmRepoCount(req.Algorithm, req.RepoCount()); err != nil {
		return nil, err
	}

	cfg, err := config.LoadIodineConfig(req.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyIodineOverrides(&cfg, req.IodineOverrides)

	repoA, err := s.buildRepository(ctx, req.Paths, req)
	if err != nil {
		return nil, err
	}

	if req.RepoCount() == 1 {
		return engine.RunSingleRepo(repoA, req.Algorithm, cfg)
	}

	repoB, err := s.buildRepository(ctx, req.SecondRepoPaths, req)
	if err != nil {
		return nil, err
	}

	return engine.RunTwoRepos(repoA, repoB, req.Algorithm, cfg)
}

// applyIodineOverrides overlays CLI-supplied thresholds onto cfg, giving the
// CLI flag layer top precedence over the env/file/default merge performed by
// config.LoadIodineConfig. A nil or zero-value field is left untouched.
func applyIodineOverrides(cfg *config.IodineConfig, overrides *domain.IodineThresholds) {
	if overrides == nil {
		return
	}
	if overrides.MinNodes != 0 {
		cfg.MinNodes = overrides.MinNodes
	}
	if overrides.MaxHoles != 0 {
		cfg.MaxHoles = overrides.MaxHoles
	}
	if overrides.HoleMassLimit != 0 {
		cfg.HoleMassLimit = overrides.HoleMassLimit
	}
	if overrides.HolesAtLeast {
		cfg.HolesPredicate = config.HolesPredicateAtLeast
	}
}

func (s *DetectionService) buildRepository(ctx context.Context, paths []string, req *domain.DetectRequest) (domain.Repository, error) {
	files, err := discover.CollectPythonFiles(paths, discover.Options{
		Recursive: req.Recursive,
		Include:   req.IncludePatterns,
		Exclude:   req.ExcludePatterns,
	})
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if s.ShowProgress && term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(len(files)), "parsing")
	}

	p := parser.New()
	converter := pyast.NewConverter()

	repo := make(domain.Repository, 0, len(files))
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		result, err := p.Parse(ctx, source)
		if err != nil {
			return nil, domain.NewUserInputErrorWithCause(fmt.Sprintf("failed to parse %s", file), err)
		}

		ast, err := parser.NewASTBuilder(source).Build(result.Tree)
		if err != nil {
			return nil, domain.NewUserInputErrorWithCause(fmt.Sprintf("failed to build AST for %s", file), err)
		}

		repo = append(repo, converter.ConvertMethods(ast, file))

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return repo, nil
}
