package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/tuning"
)

// ParseSearchSpecYAML parses a SearchSpec from YAML bytes and validates it.
// Used when the spec arrives as payload rather than from the filesystem.
func ParseSearchSpecYAML(data []byte) (*SearchSpec, error) {
	var spec SearchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse search spec yaml: %w", err)
	}
	if err := validateSearchSpec(&spec); err != nil {
		return nil, fmt.Errorf("invalid search spec: %w", err)
	}
	return &spec, nil
}

// TuningGrids converts the raw grid maps into typed grids.
func (s *SearchSpec) TuningGrids() ([]tuning.Grid, error) {
	grids := make([]tuning.Grid, 0, len(s.Grids))
	for i, raw := range s.Grids {
		grid, err := tuning.GridFromValues(raw)
		if err != nil {
			return nil, fmt.Errorf("grid %d: %w", i, err)
		}
		grids = append(grids, grid)
	}
	return grids, nil
}

// BasePlain converts the raw base option map into a typed plain map.
func (s *SearchSpec) BasePlain() (options.Plain, error) {
	plain := make(options.Plain, len(s.BaseOptions))
	for name, raw := range s.BaseOptions {
		value, err := options.FromInterface(raw)
		if err != nil {
			return nil, fmt.Errorf("base option %q: %w", name, err)
		}
		plain[name] = value
	}
	return plain, nil
}

// SearchOptions assembles the tuning search options the spec describes.
func (s *SearchSpec) SearchOptions() tuning.SearchOptions {
	return tuning.SearchOptions{
		SplitParams: tuning.SplitParams{
			TrainPart:         s.Split.TrainPart,
			Stratified:        s.Split.Stratified,
			Shuffle:           s.Split.Shuffle,
			PartitionRandSeed: s.Split.PartitionRandSeed,
		},
		CVParams: tuning.CVParams{
			FoldCount:         s.CV.FoldCount,
			Stratified:        s.CV.Stratified,
			Shuffle:           s.CV.Shuffle,
			PartitionRandSeed: s.CV.PartitionRandSeed,
		},
		UseTrainTest:  s.UseTrainTest,
		ReturnCVStats: s.ReturnCVStats,
		Verbose:       s.Verbose,
	}
}

// validateSearchSpec performs validation on the search spec.
func validateSearchSpec(spec *SearchSpec) error {
	if len(spec.Grids) == 0 {
		return fmt.Errorf("at least one grid must be defined")
	}
	for i, grid := range spec.Grids {
		if len(grid) == 0 {
			continue // an empty grid evaluates the base options once
		}
		for name, values := range grid {
			if name == "" {
				return fmt.Errorf("grid %d: parameter name cannot be empty", i)
			}
			if len(values) == 0 {
				return fmt.Errorf("grid %d: parameter %s has an empty set of values", i, name)
			}
		}
	}

	if spec.UseTrainTest {
		if spec.Split.TrainPart <= 0 || spec.Split.TrainPart >= 1 {
			return fmt.Errorf("split.train_part must be in (0, 1), got %g", spec.Split.TrainPart)
		}
	} else {
		if spec.CV.FoldCount < 2 {
			return fmt.Errorf("cv.fold_count must be at least 2, got %d", spec.CV.FoldCount)
		}
	}
	if spec.Verbose < 0 {
		return fmt.Errorf("verbose cannot be negative")
	}
	return nil
}
