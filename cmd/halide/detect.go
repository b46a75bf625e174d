package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/halide/app"
	"github.com/ludo-technologies/halide/domain"
)

// DetectCommand handles the clone detection CLI command.
type DetectCommand struct {
	algorithm string
	second    []string

	recursive       bool
	configFile      string
	includePatterns []string
	excludePatterns []string

	format string
	output string

	// Iodine threshold overrides (applied only when explicitly set).
	minNodes      int
	maxHoles      int
	holeMassLimit int
	holesAtLeast  bool
}

// NewDetectCommand creates a new detect command with this tool's defaults.
func NewDetectCommand() *DetectCommand {
	return &DetectCommand{
		algorithm:       "oxygen",
		recursive:       true,
		includePatterns: []string{"*.py"},
		excludePatterns: []string{"test_*.py", "*_test.py"},
		format:          "json",
	}
}

// CreateCobraCommand creates the Cobra command for clone detection.
func (c *DetectCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [files...]",
		Short: "Detect code clones across Python ASTs",
		Long: `Detect code clones in Python files by comparing abstract syntax trees.

Three algorithms are available:

  oxygen   - exact-duplicate subtrees within a single repository
  chlorine - exact-duplicate subtrees within one repository or shared
             between two repositories (--second)
  iodine   - approximate, anti-unified clones shared between two
             repositories (--second is required)

Examples:
  # Detect exact duplicates in the current directory
  halide detect --algorithm oxygen .

  # Find exact duplicates shared between two repositories
  halide detect --algorithm chlorine --second ../other-repo .

  # Find near-duplicates between two repositories
  halide detect --algorithm iodine --second ../other-repo src/

  # Write JSON results to a specific file instead of the default
  # clones_<timestamp>.json in the current directory
  halide detect --output clones.json src/`,
		RunE: c.runDetect,
	}

	cmd.Flags().StringVarP(&c.algorithm, "algorithm", "a", c.algorithm,
		"Detection algorithm: oxygen, chlorine, or iodine")
	cmd.Flags().StringSliceVar(&c.second, "second", nil,
		"Root paths of a second repository, for chlorine/iodine cross-repo detection")

	cmd.Flags().BoolVarP(&c.recursive, "recursive", "r", c.recursive,
		"Recursively analyze directories")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Path to a .halide.toml configuration file")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", c.includePatterns,
		"File patterns to include")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", c.excludePatterns,
		"File patterns to exclude")

	cmd.Flags().StringVarP(&c.format, "format", "f", c.format,
		"Output format: json or yaml")
	cmd.Flags().StringVarP(&c.output, "output", "o", "",
		"Write the report to this file instead of the default clones_<timestamp>.json")

	cmd.Flags().IntVar(&c.minNodes, "min-nodes", 0,
		"Override iodine's minimum admitted node weight")
	cmd.Flags().IntVar(&c.maxHoles, "max-holes", 0,
		"Override iodine's maximum admitted hole count")
	cmd.Flags().IntVar(&c.holeMassLimit, "hole-mass-limit", 0,
		"Override iodine's maximum admitted hole mass")
	cmd.Flags().BoolVar(&c.holesAtLeast, "holes-at-least", false,
		"Reproduce the original tool's literal num_holes >= max_holes reading")

	return cmd
}

func (c *DetectCommand) runDetect(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	request, err := c.createDetectRequest(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to create detect request: %w", err)
	}

	useCase, err := app.NewDetectUseCaseBuilder().Build()
	if err != nil {
		return fmt.Errorf("failed to create detect use case: %w", err)
	}

	if err := useCase.Execute(context.Background(), *request); err != nil {
		return fmt.Errorf("clone detection failed: %w", err)
	}

	return nil
}

func (c *DetectCommand) createDetectRequest(cmd *cobra.Command, paths []string) (*domain.DetectRequest, error) {
	algorithm, err := parseAlgorithm(c.algorithm)
	if err != nil {
		return nil, err
	}

	format, err := parseOutputFormat(c.format)
	if err != nil {
		return nil, err
	}

	request := domain.DefaultDetectRequest()
	request.Paths = paths
	request.SecondRepoPaths = c.second
	request.Algorithm = algorithm
	request.Recursive = c.recursive
	request.IncludePatterns = c.includePatterns
	request.ExcludePatterns = c.excludePatterns
	request.ConfigPath = c.configFile
	request.OutputFormat = format
	// OutputPath/OutputWriter are left unset unless --output was given; the
	// use case defaults to a timestamped clones_*.json file in that case
	// (spec §C.3), mirroring the original CLI's default output behavior.
	if c.output != "" {
		request.OutputPath = c.output
	}
	request.IodineOverrides = c.iodineOverrides(cmd)

	return &request, nil
}

// iodineOverrides builds the CLI-flag precedence layer from whichever
// threshold flags were explicitly set, or nil if none were.
func (c *DetectCommand) iodineOverrides(cmd *cobra.Command) *domain.IodineThresholds {
	flags := GetExplicitFlags(cmd)
	if !flags["min-nodes"] && !flags["max-holes"] && !flags["hole-mass-limit"] && !flags["holes-at-least"] {
		return nil
	}
	return &domain.IodineThresholds{
		MinNodes:      c.minNodes,
		MaxHoles:      c.maxHoles,
		HoleMassLimit: c.holeMassLimit,
		HolesAtLeast:  c.holesAtLeast,
	}
}

func parseAlgorithm(s string) (domain.AlgorithmID, error) {
	switch strings.ToLower(s) {
	case "oxygen":
		return domain.AlgorithmOxygen, nil
	case "chlorine":
		return domain.AlgorithmChlorine, nil
	case "iodine":
		return domain.AlgorithmIodine, nil
	default:
		return "", fmt.Errorf("invalid algorithm %q, must be one of: oxygen, chlorine, iodine", s)
	}
}

func parseOutputFormat(s string) (domain.OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return domain.OutputFormatJSON, nil
	case "yaml":
		return domain.OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q, must be one of: json, yaml", s)
	}
}

// NewDetectCmd creates and returns the detect cobra command.
func NewDetectCmd() *cobra.Command {
	detectCommand := NewDetectCommand()
	return detectCommand.CreateCobraCommand()
}
