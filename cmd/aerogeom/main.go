//Command aerogeom derives the geometric parameters of lifting surfaces
//described by aircraft configuration files and prints the report for each.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	aerogeometry "github.com/aerotools-dev/go_aerogeometry"
	"github.com/aerotools-dev/go_aerogeometry/config"
)

var (
	precision int
	verbose   bool
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aerogeom [config file...]",
	Short: "Derive lifting surface geometric parameters",
	Long: `Reads aircraft geometry configuration files (JSON or YAML) and derives
sweep angles, taper ratios, thickness ratios and control surface fractions
for each lifting surface described.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDerive,
}

func init() {
	rootCmd.Flags().IntVarP(&precision, "precision", "p", 8, "significant digits in the report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SilenceUsage = true
}

func runDerive(cmd *cobra.Command, args []string) error {
	logConfig := zap.NewProductionConfig()
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = logConfig.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	calc := aerogeometry.CreateGeometryCalculator()
	failed := false

	for _, path := range args {
		logger.Debug("Loading configuration", zap.String("path", path))
		surface, err := config.Load(path)
		if err != nil {
			logger.Error("Configuration rejected", zap.String("path", path), zap.Error(err))
			failed = true
			continue
		}

		geometry, err := calc.Derive(surface)
		if err != nil {
			//partial results are still printed, the caller sees both
			logger.Error("Geometry degenerate", zap.String("surface", surface.Name()), zap.Error(err))
			failed = true
		}
		logger.Debug("Derivation complete", zap.String("surface", surface.Name()))

		fmt.Println()
		fmt.Print(aerogeometry.FormatReport(geometry, precision))
	}

	if failed {
		return fmt.Errorf("one or more surfaces could not be fully derived")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
