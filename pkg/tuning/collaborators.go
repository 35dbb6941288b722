package tuning

import (
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

// Dataset is the raw training data handed to a search. The engine never
// inspects features or labels; it only needs the object count and whether
// object order is semantically meaningful.
type Dataset interface {
	ObjectCount() int
	// IsOrdered reports whether the objects carry a meaningful order.
	// Ordered data cannot be partitioned by the engine's train/test split.
	IsOrdered() bool
}

// QuantizedDataset is the opaque handle to binned training data. It is
// produced by the Quantizer and passed through to the trainer and the
// cross-validation runner without interpretation.
type QuantizedDataset any

// TrainTestData is a quantized dataset partitioned for single-split
// evaluation.
type TrainTestData struct {
	Train QuantizedDataset
	Test  QuantizedDataset
}

// Executor carries the worker budget collaborators may parallelize over. The
// calling goroutine counts as one additional worker, so a thread count of N
// yields N-1 pool workers.
type Executor struct {
	Workers int
}

// NewExecutor sizes an executor from the configured thread count.
func NewExecutor(threadCount int) *Executor {
	workers := threadCount - 1
	if workers < 0 {
		workers = 0
	}
	return &Executor{Workers: workers}
}

// SplitParams configures the train/test partition.
type SplitParams struct {
	// TrainPart is the fraction of objects assigned to the train side.
	TrainPart  float64
	Stratified bool
	// Shuffle asks the splitter to permute objects before partitioning,
	// using the random source the engine passes in.
	Shuffle           bool
	PartitionRandSeed int64
}

// CVParams configures cross-validation.
type CVParams struct {
	FoldCount         int
	Stratified        bool
	Shuffle           bool
	PartitionRandSeed int64
}

// Quantizer converts raw features into binned form under the given
// binarization axes. Implementations return a *DataError when the data fails
// one of their preconditions; such errors surface from the search unchanged.
type Quantizer interface {
	Quantize(data Dataset, binarization options.Binarization, executor *Executor) (QuantizedDataset, error)
}

// Splitter partitions quantized data into train and test sides. The random
// source is seeded from SplitParams.PartitionRandSeed, so equal seeds yield
// equal partitions.
type Splitter interface {
	Split(data QuantizedDataset, params SplitParams, rng *utils.RandSource, executor *Executor) (TrainTestData, error)
}

// TrainResult reports what the trainer measured on the test side.
type TrainResult struct {
	// TestBestError maps a metric description to that metric's best value
	// over training iterations on the test set.
	TestBestError map[string]float64
}

// Trainer fits one boosted model on a split and evaluates the configured
// metrics on the test side.
type Trainer interface {
	Train(tree *options.Tree, data TrainTestData, executor *Executor) (*TrainResult, error)
}

// CVResult is one metric's fold-averaged trajectory over training
// iterations.
type CVResult struct {
	Metric       string
	Iterations   []int
	AverageTrain []float64
	AverageTest  []float64
	StdDevTrain  []float64
	StdDevTest   []float64
}

// CrossValidator evaluates one options tree over folds of the quantized
// dataset. The first returned entry must describe the primary metric; its
// AverageTest trajectory drives candidate selection.
type CrossValidator interface {
	CrossValidate(tree *options.Tree, data QuantizedDataset, params CVParams, executor *Executor) ([]CVResult, error)
}

// MetricDirection states which way a metric improves.
type MetricDirection int

const (
	DirectionUndefined MetricDirection = iota
	DirectionMin
	DirectionMax
)

func (d MetricDirection) String() string {
	switch d {
	case DirectionMin:
		return "min"
	case DirectionMax:
		return "max"
	default:
		return "undefined"
	}
}

// MetricDirectory reports the best-value direction of metric descriptions.
type MetricDirectory interface {
	BestValueDirection(metric string) MetricDirection
}

// metricSign maps the metric direction onto the comparison sign: +1 when the
// metric is minimized, -1 when maximized. Candidate A beats candidate B iff
// sign*metric(A) < sign*metric(B).
func metricSign(directory MetricDirectory, metric string) (float64, error) {
	switch directory.BestValueDirection(metric) {
	case DirectionMin:
		return 1, nil
	case DirectionMax:
		return -1, nil
	default:
		return 0, configErrorf("metric %q for the parameter search must be minimized or maximized", metric)
	}
}
