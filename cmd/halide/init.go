package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// defaultConfigTOML is the template written by `halide init`, documenting
// the only knobs the Iodine algorithm reads (spec §9).
const defaultConfigTOML = `# halide configuration
# Generated by "halide init". Only the iodine algorithm reads these values;
# oxygen and chlorine have no tunable thresholds.

[iodine]
# Minimum combined non-hole node weight a candidate pattern must retain
# to be reported.
min_nodes = 20

# Maximum number of holes a pattern may contain and still be admitted.
max_holes = 10

# Maximum weight any single hole may have replaced.
hole_mass_limit = 5

# How max_holes is compared against a pattern's hole count: "at_most"
# (the corrected reading) or "at_least" (the original tool's literal,
# almost certainly unintended, reading).
holes_predicate = "at_most"
`

// InitCommand represents the init command.
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command.
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force:      false,
		configPath: ".halide.toml",
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization.
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a halide configuration file",
		Long: `Initialize a .halide.toml configuration file in the current directory.

Creates a .halide.toml file documenting the iodine algorithm's three
admission thresholds, which can also be set via IODINE_MIN_NODES,
IODINE_MAX_HOLES, and IODINE_HOLE_MASS_LIMIT.

Examples:
  # Create .halide.toml in the current directory
  halide init

  # Overwrite an existing configuration file
  halide init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", ".halide.toml", "Configuration file path")

	return cmd
}

func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTOML), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", relPath)
	return nil
}

// NewInitCmd creates and returns the init cobra command.
func NewInitCmd() *cobra.Command {
	initCommand := NewInitCommand()
	return initCommand.CreateCobraCommand()
}
