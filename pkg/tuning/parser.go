package tuning

import (
	"github.com/gbtkit/tuning-core/pkg/options"
)

// Aliases recognized for each quantization axis. The first alias present in
// a grid wins; later aliases are not scanned once one matched.
var (
	borderCountAliases = []string{"border_count", "max_bin"}
	borderTypeAliases  = []string{"feature_border_type"}
	nanModeAliases     = []string{"nan_mode"}
)

var (
	numericAxisKinds = map[options.Kind]bool{
		options.KindInt:    true,
		options.KindUint:   true,
		options.KindDouble: true,
	}
	stringAxisKinds = map[options.Kind]bool{
		options.KindString: true,
	}
)

// AxisPresence records which quantization axes the grid actually varied, and
// under which alias, for result reporting.
type AxisPresence struct {
	BorderCountInGrid bool
	BorderTypeInGrid  bool
	NanModeInGrid     bool
	BorderCountName   string
	BorderTypeName    string
	NanModeName       string
}

// Axes is a parsed grid: ordered candidate-value sequences with the three
// quantization axes always occupying the first three positions, followed by
// the remaining parameters. The order of the remaining parameters follows map
// iteration at parse time and stays fixed for the rest of the search.
type Axes struct {
	Values [][]options.Value
	// OtherNames parallels Values[3:].
	OtherNames []string
	Presence   AxisPresence
}

// Arity returns the tuple length candidates of this grid have.
func (a *Axes) Arity() int {
	return len(a.Values)
}

// ParseGrid splits a grid into quantization axes and other axes. Axes absent
// from the grid are synthesized as singletons holding the base binarization
// value. Matched quantization keys are deleted from base so they are not
// re-applied as plain options; base must therefore be a private copy.
func ParseGrid(grid Grid, base options.Plain, binarization options.Binarization) (*Axes, error) {
	remaining := grid.Clone()
	axes := &Axes{
		Presence: AxisPresence{
			BorderCountName: borderCountAliases[0],
			BorderTypeName:  borderTypeAliases[0],
			NanModeName:     nanModeAliases[0],
		},
	}

	borderCounts, err := extractAxis(
		remaining, base, borderCountAliases, numericAxisKinds,
		options.Int(int64(binarization.BorderCount)),
		&axes.Presence.BorderCountInGrid, &axes.Presence.BorderCountName,
	)
	if err != nil {
		return nil, err
	}
	borderTypes, err := extractAxis(
		remaining, base, borderTypeAliases, stringAxisKinds,
		options.String(string(binarization.BorderType)),
		&axes.Presence.BorderTypeInGrid, &axes.Presence.BorderTypeName,
	)
	if err != nil {
		return nil, err
	}
	nanModes, err := extractAxis(
		remaining, base, nanModeAliases, stringAxisKinds,
		options.String(string(binarization.NanMode)),
		&axes.Presence.NanModeInGrid, &axes.Presence.NanModeName,
	)
	if err != nil {
		return nil, err
	}

	axes.Values = [][]options.Value{borderCounts, borderTypes, nanModes}
	for name, values := range remaining {
		if len(values) == 0 {
			return nil, configErrorf("an empty set of values for parameter %s", name)
		}
		axes.OtherNames = append(axes.OtherNames, name)
		axes.Values = append(axes.Values, values)
	}
	return axes, nil
}

// extractAxis scans the alias list and pulls the first matching grid entry,
// validating its value types. Without a match it synthesizes a singleton from
// the fallback value.
func extractAxis(
	grid Grid,
	base options.Plain,
	aliases []string,
	allowed map[options.Kind]bool,
	fallback options.Value,
	inGrid *bool,
	matchedName *string,
) ([]options.Value, error) {
	for _, alias := range aliases {
		values, ok := grid[alias]
		if !ok {
			continue
		}
		for _, v := range values {
			if allowed[v.Kind()] || IsRandomDistributionRef(v) {
				continue
			}
			return nil, configErrorf("cannot parse parameter %q with value %s of type %s", alias, v, v.Kind())
		}
		*inGrid = true
		*matchedName = alias
		delete(grid, alias)
		delete(base, alias)
		return values, nil
	}
	return []options.Value{fallback}, nil
}
