package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbtkit/tuning-core/pkg/options"
)

func testBinarization() options.Binarization {
	return options.Binarization{
		BorderCount: 128,
		BorderType:  options.BorderGreedyLogSum,
		NanMode:     options.NanMin,
	}
}

func TestParseGridQuantizationAxesAlwaysLeading(t *testing.T) {
	grid := Grid{
		"learning_rate": {options.Double(0.03), options.Double(0.1)},
	}
	axes, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.NoError(t, err)

	require.Equal(t, 4, axes.Arity())
	// Axes absent from the grid collapse to singletons from the base options.
	assert.Equal(t, []options.Value{options.Int(128)}, axes.Values[0])
	assert.Equal(t, []options.Value{options.String("GreedyLogSum")}, axes.Values[1])
	assert.Equal(t, []options.Value{options.String("Min")}, axes.Values[2])
	assert.Equal(t, []string{"learning_rate"}, axes.OtherNames)

	assert.False(t, axes.Presence.BorderCountInGrid)
	assert.False(t, axes.Presence.BorderTypeInGrid)
	assert.False(t, axes.Presence.NanModeInGrid)
}

func TestParseGridFirstAliasWins(t *testing.T) {
	grid := Grid{
		"border_count": {options.Int(32)},
		"max_bin":      {options.Int(64)},
	}
	axes, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.NoError(t, err)

	assert.True(t, axes.Presence.BorderCountInGrid)
	assert.Equal(t, "border_count", axes.Presence.BorderCountName)
	assert.Equal(t, []options.Value{options.Int(32)}, axes.Values[0])
	// The unmatched alias stays behind as an ordinary parameter.
	assert.Equal(t, []string{"max_bin"}, axes.OtherNames)
}

func TestParseGridMatchesSecondAlias(t *testing.T) {
	grid := Grid{"max_bin": {options.Int(16), options.Int(32)}}
	axes, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.NoError(t, err)

	assert.True(t, axes.Presence.BorderCountInGrid)
	assert.Equal(t, "max_bin", axes.Presence.BorderCountName)
	assert.Empty(t, axes.OtherNames)
}

func TestParseGridRemovesMatchedKeysFromBase(t *testing.T) {
	base := options.Plain{
		"border_count":  options.Int(254),
		"learning_rate": options.Double(0.05),
	}
	grid := Grid{"border_count": {options.Int(32), options.Int(64)}}
	_, err := ParseGrid(grid, base, testBinarization())
	require.NoError(t, err)

	_, stillThere := base["border_count"]
	assert.False(t, stillThere, "matched quantization key must leave the base options")
	_, kept := base["learning_rate"]
	assert.True(t, kept, "unrelated base options stay put")
}

func TestParseGridLeavesCallerGridUntouched(t *testing.T) {
	grid := Grid{"border_count": {options.Int(32)}}
	_, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.NoError(t, err)
	assert.Contains(t, grid, "border_count")
}

func TestParseGridRejectsWrongValueTypes(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"string border count", Grid{"border_count": {options.String("many")}}},
		{"bool border type", Grid{"feature_border_type": {options.Bool(true)}}},
		{"numeric nan mode", Grid{"nan_mode": {options.Int(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.grid, options.Plain{}, testBinarization())
			require.Error(t, err)
			assert.IsType(t, &ConfigError{}, err)
		})
	}
}

func TestParseGridAllowsRandomRefsOnQuantizationAxes(t *testing.T) {
	grid := Grid{
		"border_count": {options.String(RandomDistributionSentinel + "_bins")},
	}
	axes, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.NoError(t, err)
	assert.True(t, axes.Presence.BorderCountInGrid)
}

func TestParseGridRejectsEmptyOtherAxis(t *testing.T) {
	grid := Grid{"learning_rate": {}}
	_, err := ParseGrid(grid, options.Plain{}, testBinarization())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty set of values")
}
