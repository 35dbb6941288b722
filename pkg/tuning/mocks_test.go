package tuning

import (
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

type mockDataset struct {
	count   int
	ordered bool
}

func (d mockDataset) ObjectCount() int { return d.count }
func (d mockDataset) IsOrdered() bool  { return d.ordered }

// mockQuantized remembers the binarization it was produced under, the way a
// real binned dataset determines what the trainer sees.
type mockQuantized struct {
	binarization options.Binarization
}

type mockQuantizer struct {
	calls []options.Binarization
	err   error
}

func (q *mockQuantizer) Quantize(_ Dataset, b options.Binarization, _ *Executor) (QuantizedDataset, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.calls = append(q.calls, b)
	return &mockQuantized{binarization: b}, nil
}

type mockSplitter struct {
	calls int
}

func (s *mockSplitter) Split(data QuantizedDataset, _ SplitParams, _ *utils.RandSource, _ *Executor) (TrainTestData, error) {
	s.calls++
	return TrainTestData{Train: data, Test: data}, nil
}

// candidateScore lets tests define the metric surface over candidates. The
// quantized handle carries the binarization; everything else is read from the
// typed tree.
type candidateScore func(tree *options.Tree, binarization options.Binarization) float64

type mockTrainer struct {
	score candidateScore
	seen  []float64
	err   error
}

func (t *mockTrainer) Train(tree *options.Tree, data TrainTestData, _ *Executor) (*TrainResult, error) {
	if t.err != nil {
		return nil, t.err
	}
	value := t.score(tree, data.Test.(*mockQuantized).binarization)
	t.seen = append(t.seen, value)
	return &TrainResult{
		TestBestError: map[string]float64{tree.PrimaryMetric(): value},
	}, nil
}

// mockCrossValidator builds a two-fold, two-iteration trajectory whose final
// test mean equals the score, exercising the fold aggregation helper.
type mockCrossValidator struct {
	score candidateScore
	seen  []float64
	calls int
	err   error
}

func (c *mockCrossValidator) CrossValidate(tree *options.Tree, data QuantizedDataset, _ CVParams, _ *Executor) ([]CVResult, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	value := c.score(tree, data.(*mockQuantized).binarization)
	c.seen = append(c.seen, value)

	folds := [][]float64{
		{value + 0.5, value + 0.01},
		{value + 0.3, value - 0.01},
	}
	mean, stddev := AggregateFoldMetrics(folds)
	return []CVResult{{
		Metric:      tree.PrimaryMetric(),
		Iterations:  []int{0, 1},
		AverageTest: mean,
		StdDevTest:  stddev,
	}}, nil
}

// lossSurface scores a candidate by border count alone, the shape most
// scenario tests use.
func lossSurface(_ *options.Tree, b options.Binarization) float64 {
	return float64(b.BorderCount) * 0.01
}

func learningRateSurface(tree *options.Tree, b options.Binarization) float64 {
	return float64(b.BorderCount)*0.01 + tree.Plain["learning_rate"].Double()
}
