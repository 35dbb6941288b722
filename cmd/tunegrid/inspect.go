package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbtkit/tuning-core/internal/enumerate"
	"github.com/gbtkit/tuning-core/pkg/options"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the parsed axes and candidate count of every grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, _, err := loadAxes(0)
		if err != nil {
			return err
		}

		for gridIdx := range spec.Grids {
			_, axes, err := loadAxes(gridIdx)
			if err != nil {
				return err
			}
			enum, err := enumerate.NewEnumerator(axes.Values)
			if err != nil {
				return fmt.Errorf("grid %d: %w", gridIdx, err)
			}

			fmt.Printf("grid %d: %d candidates over %d axes\n", gridIdx, enum.TotalCount(), axes.Arity())
			names := axisNames(axes)
			for i, name := range names {
				fixed := ""
				if i < 3 && len(axes.Values[i]) == 1 {
					fixed = " (fixed)"
				}
				fmt.Printf("  %-24s %d values%s\n", name, len(axes.Values[i]), fixed)
			}
		}

		if spec.NumTries > 0 {
			fmt.Printf("randomized search: %d tries over grid 0\n", spec.NumTries)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// previewTuples prints up to limit tuples from the iterator.
func previewTuples(iterator enumerate.Iterator[options.Value], names []string, limit int) {
	fmt.Printf("axes: %v\n", names)
	printed := 0
	for printed < limit {
		tuple, ok := iterator.Next()
		if !ok {
			break
		}
		fmt.Printf("%4d: %s\n", printed, formatTuple(tuple))
		printed++
	}
	if remaining := int64(iterator.TotalCount()) - int64(printed); remaining > 0 {
		fmt.Printf("... %d more\n", remaining)
	}
}
