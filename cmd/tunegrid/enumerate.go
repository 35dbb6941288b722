package main

import (
	"github.com/spf13/cobra"

	"github.com/gbtkit/tuning-core/internal/enumerate"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

var (
	gridIndex   int
	tupleLimit  int
	sampleTries uint32
	sampleSeed  int64
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Print the candidate tuples an exhaustive search would visit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, axes, err := loadAxes(gridIndex)
		if err != nil {
			return err
		}
		iterator, err := enumerate.NewExhaustive(axes.Values)
		if err != nil {
			return err
		}
		previewTuples(iterator, axisNames(axes), tupleLimit)
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the candidate tuples a randomized search would visit",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, axes, err := loadAxes(gridIndex)
		if err != nil {
			return err
		}
		tries := sampleTries
		if tries == 0 {
			tries = spec.NumTries
		}
		rng := utils.NewRandSource(sampleSeed)
		iterator, err := enumerate.NewSampled(axes.Values, tries, false, rng)
		if err != nil {
			return err
		}
		previewTuples(iterator, axisNames(axes), tupleLimit)
		return nil
	},
}

func init() {
	enumerateCmd.Flags().IntVar(&gridIndex, "grid", 0, "Grid index within the spec")
	enumerateCmd.Flags().IntVar(&tupleLimit, "limit", 20, "Maximum tuples to print")

	sampleCmd.Flags().IntVar(&gridIndex, "grid", 0, "Grid index within the spec")
	sampleCmd.Flags().IntVar(&tupleLimit, "limit", 20, "Maximum tuples to print")
	sampleCmd.Flags().Uint32Var(&sampleTries, "tries", 0, "Sample size (defaults to the spec's num_tries)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Sampling seed (0 uses the current time)")

	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(sampleCmd)
}
