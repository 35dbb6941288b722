package options

import "fmt"

// BorderType selects the feature border computation strategy used when
// quantizing float features.
type BorderType string

const (
	BorderUniform             BorderType = "Uniform"
	BorderUniformAndQuantiles BorderType = "UniformAndQuantiles"
	BorderGreedyLogSum        BorderType = "GreedyLogSum"
	BorderMaxLogSum           BorderType = "MaxLogSum"
	BorderMinEntropy          BorderType = "MinEntropy"
	BorderMedian              BorderType = "Median"
)

// ParseBorderType converts a string into a BorderType.
func ParseBorderType(s string) (BorderType, error) {
	switch BorderType(s) {
	case BorderUniform, BorderUniformAndQuantiles, BorderGreedyLogSum,
		BorderMaxLogSum, BorderMinEntropy, BorderMedian:
		return BorderType(s), nil
	default:
		return "", fmt.Errorf("unknown feature border type %q", s)
	}
}

// NanMode selects how missing float feature values are binned.
type NanMode string

const (
	NanForbidden NanMode = "Forbidden"
	NanMin       NanMode = "Min"
	NanMax       NanMode = "Max"
)

// ParseNanMode converts a string into a NanMode.
func ParseNanMode(s string) (NanMode, error) {
	switch NanMode(s) {
	case NanForbidden, NanMin, NanMax:
		return NanMode(s), nil
	default:
		return "", fmt.Errorf("unknown nan mode %q", s)
	}
}

// DefaultBorderCount is the border count applied when the caller does not set
// one.
const DefaultBorderCount = 254

// Binarization holds the float feature quantization axes. Two candidates with
// equal Binarization values share quantized data.
type Binarization struct {
	BorderCount int
	BorderType  BorderType
	NanMode     NanMode
}

// DefaultBinarization returns the binarization applied when none of the axes
// appear in the caller's options.
func DefaultBinarization() Binarization {
	return Binarization{
		BorderCount: DefaultBorderCount,
		BorderType:  BorderGreedyLogSum,
		NanMode:     NanMin,
	}
}
