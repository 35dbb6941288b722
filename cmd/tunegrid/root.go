package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gbtkit/tuning-core/pkg/config"
	"github.com/gbtkit/tuning-core/pkg/logger"
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/tuning"
)

var (
	logLevel string
	specPath string
	log      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tunegrid",
	Short: "Inspect hyperparameter search spaces for boosted-tree training",
	Long: `tunegrid loads a search spec file and reports what a hyperparameter
search over it would do: the parsed axes, the candidate count, and the
candidate tuples an exhaustive or randomized search would visit.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.NewText(logLevel, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&specPath, "spec", "s", "search.yaml", "Path to the search spec file")
}

// loadAxes loads the spec and parses the requested grid into ordered axes.
func loadAxes(gridIndex int) (*config.SearchSpec, *tuning.Axes, error) {
	spec, err := config.LoadSearchSpec(specPath)
	if err != nil {
		return nil, nil, err
	}
	grids, err := spec.TuningGrids()
	if err != nil {
		return nil, nil, err
	}
	if gridIndex < 0 || gridIndex >= len(grids) {
		return nil, nil, fmt.Errorf("grid index %d out of range, spec has %d grids", gridIndex, len(grids))
	}
	base, err := spec.BasePlain()
	if err != nil {
		return nil, nil, err
	}
	tree, err := options.DefaultParser{}.Parse(base)
	if err != nil {
		return nil, nil, err
	}
	axes, err := tuning.ParseGrid(grids[gridIndex], base, tree.Binarization)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("parsed search spec grid",
		"path", specPath,
		"grid", gridIndex,
		"axes", axes.Arity(),
	)
	return spec, axes, nil
}

// axisNames lists the axis names in tuple order: the three quantization axes
// under their matched aliases, then the remaining parameters.
func axisNames(axes *tuning.Axes) []string {
	names := []string{
		axes.Presence.BorderCountName,
		axes.Presence.BorderTypeName,
		axes.Presence.NanModeName,
	}
	return append(names, axes.OtherNames...)
}

func formatTuple(tuple []options.Value) string {
	out := ""
	for i, v := range tuple {
		if i > 0 {
			out += ", "
		}
		out += v.String()
	}
	return "[" + out + "]"
}
