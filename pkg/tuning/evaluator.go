package tuning

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gbtkit/tuning-core/internal/enumerate"
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

// bestCandidate records the winner of one grid.
type bestCandidate struct {
	metric float64
	sign   float64
	index  int
	triple quantizationTriple
	plain  options.Plain
	// quantized is the handle the winner was evaluated on, preserved for the
	// final quality estimation.
	quantized QuantizedDataset
	cv        []CVResult
}

// evaluator runs the candidates of one grid and tracks the best one under
// metric-direction-aware comparison.
type evaluator struct {
	collab     Collaborators
	opts       *SearchOptions
	data       Dataset
	generators GeneratorRegistry
	axes       *Axes
	base       options.Plain
	cache      *quantizationCache
	rng        *utils.RandSource
	executor   *Executor
	logger     *slog.Logger

	iteration int
	metrics   []float64
	bestValue float64
	best      bestCandidate
	hasBest   bool
}

// run evaluates every tuple the iterator yields, in order. The first error
// aborts the remaining candidates.
func (e *evaluator) run(iterator enumerate.Iterator[options.Value]) error {
	for {
		tuple, ok := iterator.Next()
		if !ok {
			return nil
		}
		if err := e.evaluateOne(tuple); err != nil {
			return err
		}
	}
}

func (e *evaluator) evaluateOne(tuple []options.Value) error {
	started := time.Now()
	if len(tuple) != e.axes.Arity() {
		return internalErrorf("candidate tuple arity %d does not match the %d parsed axes", len(tuple), e.axes.Arity())
	}

	triple, err := e.resolveTriple(tuple)
	if err != nil {
		return err
	}

	// The three quantization coordinates were stripped from the base map at
	// parse time, so writing the remaining coordinates yields the full
	// candidate assignment.
	candidate := e.base.Clone()
	for i, name := range e.axes.OtherNames {
		value, err := resolveRandomValue(tuple[3+i], e.generators)
		if err != nil {
			return err
		}
		candidate[name] = value
	}

	tree, err := e.collab.OptionsParser.Parse(candidate)
	if err != nil {
		return &ConfigError{Reason: err.Error()}
	}

	var metricValue float64
	var cv []CVResult
	if e.opts.UseTrainTest {
		split, err := e.cache.applyAndSplit(e.data, triple, e.opts.SplitParams, e.rng, e.executor)
		if err != nil {
			return err
		}
		result, err := e.collab.Trainer.Train(tree, split, e.executor)
		if err != nil {
			return &TrainerError{Op: "training", Err: err}
		}
		value, ok := result.TestBestError[tree.PrimaryMetric()]
		if !ok {
			return &TrainerError{
				Op:  "training",
				Err: fmt.Errorf("no test error reported for metric %q", tree.PrimaryMetric()),
			}
		}
		metricValue = value
	} else {
		quantized, _, err := e.cache.apply(e.data, triple, e.executor)
		if err != nil {
			return err
		}
		results, err := e.collab.CrossValidator.CrossValidate(tree, quantized, e.opts.CVParams, e.executor)
		if err != nil {
			return &TrainerError{Op: "cross-validation", Err: err}
		}
		if len(results) == 0 || len(results[0].AverageTest) == 0 {
			return &TrainerError{
				Op:  "cross-validation",
				Err: fmt.Errorf("no test trajectory reported for metric %q", tree.PrimaryMetric()),
			}
		}
		// The candidate's score is the final-iteration test mean of the
		// primary metric.
		trajectory := results[0].AverageTest
		metricValue = trajectory[len(trajectory)-1]
		cv = results
	}

	sign, err := metricSign(e.collab.Metrics, tree.PrimaryMetric())
	if err != nil {
		return err
	}

	if e.iteration == 0 {
		// Seeded one sign step past the first metric so the comparison below
		// always accepts the first candidate.
		e.bestValue = metricValue + sign
	}
	if sign*metricValue < sign*e.bestValue {
		e.bestValue = metricValue
		e.best = bestCandidate{
			metric:    metricValue,
			sign:      sign,
			index:     e.iteration,
			triple:    triple,
			plain:     candidate,
			quantized: e.cache.quantized,
			cv:        cv,
		}
		e.hasBest = true
	}

	if e.opts.Verbose > 0 && e.iteration%e.opts.Verbose == 0 {
		e.logger.Info("candidate evaluated",
			"candidate", e.iteration,
			"metric", tree.PrimaryMetric(),
			"value", metricValue,
			"best_value", e.best.metric,
			"best_candidate", e.best.index,
			"elapsed", time.Since(started),
		)
	}

	e.metrics = append(e.metrics, metricValue)
	e.iteration++
	return nil
}

// resolveTriple materializes the first three tuple coordinates into a
// concrete quantization assignment.
func (e *evaluator) resolveTriple(tuple []options.Value) (quantizationTriple, error) {
	binsValue, err := resolveRandomValue(tuple[0], e.generators)
	if err != nil {
		return quantizationTriple{}, err
	}
	borderValue, err := resolveRandomValue(tuple[1], e.generators)
	if err != nil {
		return quantizationTriple{}, err
	}
	nanValue, err := resolveRandomValue(tuple[2], e.generators)
	if err != nil {
		return quantizationTriple{}, err
	}

	binsCount := int(binsValue.Int())
	if binsCount <= 0 {
		return quantizationTriple{}, configErrorf("border count must be positive, got %d", binsCount)
	}
	borderType, err := options.ParseBorderType(borderValue.String())
	if err != nil {
		return quantizationTriple{}, &ConfigError{Reason: err.Error()}
	}
	nanMode, err := options.ParseNanMode(nanValue.String())
	if err != nil {
		return quantizationTriple{}, &ConfigError{Reason: err.Error()}
	}
	return quantizationTriple{
		BinsCount:  binsCount,
		BorderType: borderType,
		NanMode:    nanMode,
	}, nil
}
