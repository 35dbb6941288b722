package tuning

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gbtkit/tuning-core/internal/enumerate"
	"github.com/gbtkit/tuning-core/pkg/logger"
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

// Collaborators bundles the external systems a search drives. OptionsParser
// and Metrics fall back to the in-package defaults when nil; the remaining
// members are required depending on the evaluation mode.
type Collaborators struct {
	OptionsParser options.Parser
	Quantizer     Quantizer
	Splitter      Splitter
	Trainer       Trainer
	// CrossValidator evaluates candidates in CV mode and estimates the final
	// quality of the winner in train/test mode.
	CrossValidator CrossValidator
	Metrics        MetricDirectory
}

func (c Collaborators) withDefaults() Collaborators {
	if c.OptionsParser == nil {
		c.OptionsParser = options.DefaultParser{}
	}
	if c.Metrics == nil {
		c.Metrics = DefaultMetricDirectory{}
	}
	return c
}

func (c Collaborators) validate(useTrainTest bool) error {
	if c.Quantizer == nil {
		return configErrorf("a quantizer collaborator is required")
	}
	if useTrainTest {
		if c.Splitter == nil {
			return configErrorf("a splitter collaborator is required for train/test search")
		}
		if c.Trainer == nil {
			return configErrorf("a trainer collaborator is required for train/test search")
		}
	}
	if c.CrossValidator == nil {
		return configErrorf("a cross-validation collaborator is required")
	}
	return nil
}

// SearchOptions control evaluation mode, partitioning, verbosity and result
// shape.
type SearchOptions struct {
	SplitParams SplitParams
	CVParams    CVParams
	// UseTrainTest selects one train/test evaluation per candidate instead of
	// cross-validation.
	UseTrainTest bool
	// ReturnCVStats asks for cross-validation statistics of the winner. In CV
	// mode this returns the trace accumulated during the search; train/test
	// mode always re-validates the winner on its preserved quantized data.
	ReturnCVStats bool
	// Verbose <= 0 silences progress; a positive value logs every Verbose-th
	// candidate.
	Verbose int
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// searchState is the per-search context shared by both entry points.
type searchState struct {
	collab   Collaborators
	opts     SearchOptions
	data     Dataset
	base     options.Plain
	baseTree *options.Tree
	executor *Executor
	logger   *slog.Logger
	rng      *utils.RandSource
	runID    string
}

// gridOutcome is the result of tuning one grid.
type gridOutcome struct {
	best          bestCandidate
	presence      AxisPresence
	otherNames    []string
	metrics       []float64
	quantizations int
}

func newSearchState(base options.Plain, data Dataset, collab Collaborators, opts SearchOptions) (*searchState, error) {
	collab = collab.withDefaults()
	if err := collab.validate(opts.UseTrainTest); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, configErrorf("training data is required")
	}

	baseTree, err := collab.OptionsParser.Parse(base)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if baseTree.SaveSnapshot {
		return nil, configErrorf("snapshots are not supported for the parameter search")
	}
	if opts.UseTrainTest && data.IsOrdered() {
		return nil, configErrorf("parameter search for ordered objects data is not yet implemented")
	}

	seed := opts.CVParams.PartitionRandSeed
	if opts.UseTrainTest {
		seed = opts.SplitParams.PartitionRandSeed
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	runID := uuid.NewString()

	return &searchState{
		collab:   collab,
		opts:     opts,
		data:     data,
		base:     base,
		baseTree: baseTree,
		executor: NewExecutor(baseTree.ThreadCount),
		logger:   log.With("run_id", runID),
		rng:      utils.NewRandSource(seed),
		runID:    runID,
	}, nil
}

// GridSearch exhaustively evaluates every candidate of every grid and returns
// the option values of the global winner.
func GridSearch(
	grids []Grid,
	base options.Plain,
	data Dataset,
	collab Collaborators,
	opts SearchOptions,
) (*BestOptionValues, error) {
	started := time.Now()
	s, err := newSearchState(base, data, collab, opts)
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, configErrorf("the search space holds no grids")
	}

	var winner *gridOutcome
	bestGrid := 0
	var metrics []float64
	quantizations := 0

	for gridIdx, grid := range grids {
		if s.opts.Verbose > 0 && len(grids) > 1 {
			s.logger.Info("searching grid", "grid", gridIdx)
		}
		outcome, err := s.tuneGrid(grid, nil)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, outcome.metrics...)
		quantizations += outcome.quantizations

		// Strict signed comparison: ties keep the earlier grid.
		if winner == nil ||
			outcome.best.sign*outcome.best.metric < outcome.best.sign*winner.best.metric {
			winner = outcome
			bestGrid = gridIdx
		}
	}

	best, err := s.finishSearch(winner)
	if err != nil {
		return nil, err
	}
	report := buildReport(s.runID, metrics, time.Since(started))
	report.GridCount = len(grids)
	report.BestGrid = bestGrid
	report.BestCandidate = winner.best.index
	report.BestMetric = winner.best.metric
	report.Quantizations = quantizations
	best.Report = report
	return best, nil
}

// RandomizedSearch samples numberOfTries candidates from the first grid of
// the search space. Index repetition is allowed exactly when the generator
// registry is non-empty: coordinates that resolve to fresh random draws make
// a revisited index a new candidate.
func RandomizedSearch(
	numberOfTries uint32,
	generators GeneratorRegistry,
	grids []Grid,
	base options.Plain,
	data Dataset,
	collab Collaborators,
	opts SearchOptions,
) (*BestOptionValues, error) {
	started := time.Now()
	s, err := newSearchState(base, data, collab, opts)
	if err != nil {
		return nil, err
	}
	if len(grids) == 0 {
		return nil, configErrorf("the search space holds no grids")
	}

	outcome, err := s.tuneSampled(grids[0], numberOfTries, generators)
	if err != nil {
		return nil, err
	}

	best, err := s.finishSearch(outcome)
	if err != nil {
		return nil, err
	}
	report := buildReport(s.runID, outcome.metrics, time.Since(started))
	report.GridCount = 1
	report.BestCandidate = outcome.best.index
	report.BestMetric = outcome.best.metric
	report.Quantizations = outcome.quantizations
	best.Report = report
	return best, nil
}

func (s *searchState) tuneGrid(grid Grid, generators GeneratorRegistry) (*gridOutcome, error) {
	basePlain := s.base.Clone()
	axes, err := ParseGrid(grid, basePlain, s.baseTree.Binarization)
	if err != nil {
		return nil, err
	}
	iterator, err := enumerate.NewExhaustive(axes.Values)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return s.tune(axes, basePlain, iterator, generators)
}

func (s *searchState) tuneSampled(grid Grid, numberOfTries uint32, generators GeneratorRegistry) (*gridOutcome, error) {
	basePlain := s.base.Clone()
	axes, err := ParseGrid(grid, basePlain, s.baseTree.Binarization)
	if err != nil {
		return nil, err
	}
	iterator, err := enumerate.NewSampled(axes.Values, numberOfTries, len(generators) > 0, s.rng)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return s.tune(axes, basePlain, iterator, generators)
}

func (s *searchState) tune(
	axes *Axes,
	basePlain options.Plain,
	iterator enumerate.Iterator[options.Value],
	generators GeneratorRegistry,
) (*gridOutcome, error) {
	if err := validateRandomRefs(axes, generators); err != nil {
		return nil, err
	}
	if s.opts.Verbose > 0 {
		s.logger.Info("parameter search started",
			"candidates", iterator.TotalCount(),
			"axes", axes.Arity(),
		)
	}

	e := &evaluator{
		collab:     s.collab,
		opts:       &s.opts,
		data:       s.data,
		generators: generators,
		axes:       axes,
		base:       basePlain,
		cache:      newQuantizationCache(s.collab.Quantizer, s.collab.Splitter),
		rng:        s.rng,
		executor:   s.executor,
		logger:     s.logger,
	}
	if err := e.run(iterator); err != nil {
		return nil, err
	}
	if !e.hasBest {
		return nil, internalErrorf("no candidate won the best-so-far comparison")
	}
	return &gridOutcome{
		best:          e.best,
		presence:      axes.Presence,
		otherNames:    axes.OtherNames,
		metrics:       e.metrics,
		quantizations: e.cache.applied,
	}, nil
}

// finishSearch converts the winning candidate into BestOptionValues and
// attaches cross-validation statistics: always in train/test mode, and in CV
// mode when ReturnCVStats is set.
func (s *searchState) finishSearch(winner *gridOutcome) (*BestOptionValues, error) {
	best := &BestOptionValues{}
	if err := best.setFromPlain(winner.best.plain, winner.otherNames); err != nil {
		return nil, err
	}
	best.setQuantizationAxes(winner.best.triple, winner.presence)

	if s.opts.ReturnCVStats || s.opts.UseTrainTest {
		if s.opts.UseTrainTest {
			if s.opts.Verbose > 0 {
				s.logger.Info("estimating final quality")
			}
			tree, err := s.collab.OptionsParser.Parse(winner.best.plain)
			if err != nil {
				return nil, &ConfigError{Reason: err.Error()}
			}
			cv, err := s.collab.CrossValidator.CrossValidate(
				tree, winner.best.quantized, s.opts.CVParams, s.executor)
			if err != nil {
				return nil, &TrainerError{Op: "cross-validation", Err: err}
			}
			best.CVResults = cv
		} else {
			best.CVResults = winner.best.cv
		}
	}
	return best, nil
}

// validateRandomRefs fails early on references no registered generator can
// serve, before any candidate is trained.
func validateRandomRefs(axes *Axes, generators GeneratorRegistry) error {
	for _, set := range axes.Values {
		for _, v := range set {
			if !IsRandomDistributionRef(v) {
				continue
			}
			if _, ok := generators[v.String()]; !ok {
				return configErrorf("reference to unknown random distribution generator %q", v.String())
			}
		}
	}
	return nil
}
