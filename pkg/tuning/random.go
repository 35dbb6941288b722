package tuning

import (
	"strings"

	"github.com/gbtkit/tuning-core/pkg/options"
)

// RandomDistributionSentinel prefixes string values that name an entry in the
// caller's generator registry instead of a literal. The full string is the
// registry key.
const RandomDistributionSentinel = "CustomRandomDistributionGenerator"

// DistributionGenerator draws one concrete numeric sample from a
// caller-defined distribution.
type DistributionGenerator func() float64

// GeneratorRegistry maps sentinel names to caller-supplied samplers.
type GeneratorRegistry map[string]DistributionGenerator

// IsRandomDistributionRef reports whether a value refers to a random
// distribution generator rather than carrying a literal.
func IsRandomDistributionRef(v options.Value) bool {
	return v.Kind() == options.KindString &&
		strings.HasPrefix(v.String(), RandomDistributionSentinel)
}

// resolveRandomValue replaces a distribution reference with a freshly drawn
// sample; every other value passes through untouched. Resolution happens per
// evaluation, so a repeated tuple slot may yield a different concrete value
// each time it is visited.
func resolveRandomValue(v options.Value, generators GeneratorRegistry) (options.Value, error) {
	if !IsRandomDistributionRef(v) {
		return v, nil
	}
	generator, ok := generators[v.String()]
	if !ok {
		return options.Value{}, configErrorf("reference to unknown random distribution generator %q", v.String())
	}
	return options.Double(generator()), nil
}
