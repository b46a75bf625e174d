package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/halide/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "halide",
	Short: "A structural and near-duplicate clone detector for Python ASTs",
	Long: `halide detects duplicated and near-duplicated Python code by comparing
abstract syntax trees instead of raw text.

Algorithms:
  • oxygen   - exact-duplicate detection within a single repository
  • chlorine - exact-duplicate detection within or across two repositories
  • iodine   - approximate (anti-unified) detection across two repositories`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDetectCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
