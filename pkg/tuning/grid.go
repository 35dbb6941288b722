package tuning

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gbtkit/tuning-core/pkg/options"
)

// Grid maps a parameter name to a non-empty ordered sequence of candidate
// values. A search space is one grid or a list of grids.
type Grid map[string][]options.Value

// Clone returns a copy of the grid sharing the value slices.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for name, values := range g {
		out[name] = values
	}
	return out
}

// ParseGridsJSON parses the accepted search-space payload shapes: a single
// {"name": [values, ...]} object, or a list of such objects.
func ParseGridsJSON(data []byte) ([]Grid, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, configErrorf("malformed search space json: %v", err)
	}

	switch payload := raw.(type) {
	case map[string]any:
		grid, err := gridFromJSONMap(payload)
		if err != nil {
			return nil, err
		}
		return []Grid{grid}, nil
	case []any:
		grids := make([]Grid, 0, len(payload))
		for i, entry := range payload {
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, configErrorf("search space entry %d is not an object", i)
			}
			grid, err := gridFromJSONMap(m)
			if err != nil {
				return nil, err
			}
			grids = append(grids, grid)
		}
		return grids, nil
	default:
		return nil, configErrorf("search space must be an object or a list of objects")
	}
}

// GridFromValues converts a decoded generic map (e.g. from a YAML file) into
// a Grid.
func GridFromValues(raw map[string][]any) (Grid, error) {
	grid := make(Grid, len(raw))
	for name, values := range raw {
		converted := make([]options.Value, 0, len(values))
		for _, v := range values {
			value, err := options.FromInterface(v)
			if err != nil {
				return nil, configErrorf("parameter %q: %v", name, err)
			}
			converted = append(converted, value)
		}
		grid[name] = converted
	}
	return grid, nil
}

func gridFromJSONMap(m map[string]any) (Grid, error) {
	grid := make(Grid, len(m))
	for name, entry := range m {
		values, ok := entry.([]any)
		if !ok {
			return nil, configErrorf("parameter %q must map to an array of values", name)
		}
		converted := make([]options.Value, 0, len(values))
		for _, v := range values {
			value, err := valueFromJSON(v)
			if err != nil {
				return nil, configErrorf("parameter %q: %v", name, err)
			}
			converted = append(converted, value)
		}
		grid[name] = converted
	}
	return grid, nil
}

func valueFromJSON(x any) (options.Value, error) {
	switch v := x.(type) {
	case bool:
		return options.Bool(v), nil
	case string:
		return options.String(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return options.Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return options.Value{}, fmt.Errorf("unparseable number %q", v.String())
		}
		return options.Double(f), nil
	default:
		return options.Value{}, fmt.Errorf("unsupported value type %T", x)
	}
}
