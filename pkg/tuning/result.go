package tuning

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/gbtkit/tuning-core/pkg/options"
)

// BestOptionValues is the search result: the winning candidate's option
// values split into five typed maps, plus the winner's cross-validation trace
// when one was produced.
type BestOptionValues struct {
	Bool   map[string]bool
	Int    map[string]int64
	Uint   map[string]uint64
	Double map[string]float64
	String map[string]string

	CVResults []CVResult
	Report    *SearchReport
}

// setFromPlain clears the typed maps and fills them with the named options
// from the winning candidate's plain map.
func (b *BestOptionValues) setFromPlain(plain options.Plain, names []string) error {
	b.Bool = make(map[string]bool)
	b.Int = make(map[string]int64)
	b.Uint = make(map[string]uint64)
	b.Double = make(map[string]float64)
	b.String = make(map[string]string)

	for _, name := range names {
		value, ok := plain[name]
		if !ok {
			return internalErrorf("winning candidate lost option %q", name)
		}
		switch value.Kind() {
		case options.KindBool:
			b.Bool[name] = value.Bool()
		case options.KindInt:
			b.Int[name] = value.Int()
		case options.KindUint:
			b.Uint[name] = value.Uint()
		case options.KindDouble:
			b.Double[name] = value.Double()
		case options.KindString:
			b.String[name] = value.String()
		default:
			return configErrorf("option %q value should be bool, int, uint, double or string", name)
		}
	}
	return nil
}

// setQuantizationAxes publishes the winning quantization axes, but only the
// ones the grid actually varied, each under the alias it matched.
func (b *BestOptionValues) setQuantizationAxes(triple quantizationTriple, presence AxisPresence) {
	if presence.BorderCountInGrid {
		b.Int[presence.BorderCountName] = int64(triple.BinsCount)
	}
	if presence.BorderTypeInGrid {
		b.String[presence.BorderTypeName] = string(triple.BorderType)
	}
	if presence.NanModeInGrid {
		b.String[presence.NanModeName] = string(triple.NanMode)
	}
}

// SearchReport carries evaluation statistics for a finished search.
type SearchReport struct {
	RunID          string
	GridCount      int
	CandidateCount int
	// BestCandidate is the position of the winner in evaluation order within
	// its grid, BestGrid the index of that grid in the search space.
	BestCandidate int
	BestGrid      int
	BestMetric    float64
	// MetricMean and MetricStdDev summarize the metric values of every
	// evaluated candidate across all grids.
	MetricMean   float64
	MetricStdDev float64
	// Quantizations counts how often the quantizer actually ran; adjacent
	// candidates sharing a quantization triple reuse binned data.
	Quantizations int
	Elapsed       time.Duration
}

func buildReport(runID string, metrics []float64, elapsed time.Duration) *SearchReport {
	report := &SearchReport{
		RunID:          runID,
		CandidateCount: len(metrics),
		Elapsed:        elapsed,
	}
	if len(metrics) > 0 {
		report.MetricMean = stat.Mean(metrics, nil)
	}
	if len(metrics) > 1 {
		report.MetricStdDev = stat.StdDev(metrics, nil)
	}
	return report
}

// AggregateFoldMetrics reduces per-fold metric trajectories to their
// per-iteration mean and standard deviation, the form CVResult carries.
// Every fold must have the same trajectory length.
func AggregateFoldMetrics(folds [][]float64) (mean, stddev []float64) {
	if len(folds) == 0 {
		return nil, nil
	}
	iterations := len(folds[0])
	mean = make([]float64, iterations)
	stddev = make([]float64, iterations)
	sample := make([]float64, len(folds))
	for i := 0; i < iterations; i++ {
		for f, fold := range folds {
			sample[f] = fold[i]
		}
		mean[i], stddev[i] = stat.MeanStdDev(sample, nil)
	}
	return mean, stddev
}
