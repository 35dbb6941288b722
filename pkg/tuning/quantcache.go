package tuning

import (
	"github.com/gbtkit/tuning-core/pkg/options"
	"github.com/gbtkit/tuning-core/pkg/utils"
)

// quantizationTriple is the (bin count, border type, nan mode) assignment of
// one candidate. Two candidates with equal triples share quantized data.
type quantizationTriple struct {
	BinsCount  int
	BorderType options.BorderType
	NanMode    options.NanMode
}

func (t quantizationTriple) binarization() options.Binarization {
	return options.Binarization{
		BorderCount: t.BinsCount,
		BorderType:  t.BorderType,
		NanMode:     t.NanMode,
	}
}

// quantizationCache keeps the last applied triple and its quantized dataset,
// re-quantizing only when a candidate changes any axis. The initial triple
// has BinsCount -1, which no valid candidate can match, so the first
// candidate always quantizes.
type quantizationCache struct {
	quantizer Quantizer
	splitter  Splitter
	last      quantizationTriple
	quantized QuantizedDataset
	split     TrainTestData
	// applied counts quantizer invocations, for reporting.
	applied int
}

func newQuantizationCache(quantizer Quantizer, splitter Splitter) *quantizationCache {
	return &quantizationCache{
		quantizer: quantizer,
		splitter:  splitter,
		last:      quantizationTriple{BinsCount: -1},
	}
}

// apply returns quantized data for the triple, re-quantizing when it differs
// from the last applied one. The second return reports whether fresh data was
// produced.
func (c *quantizationCache) apply(data Dataset, next quantizationTriple, executor *Executor) (QuantizedDataset, bool, error) {
	if next == c.last {
		return c.quantized, false, nil
	}
	quantized, err := c.quantizer.Quantize(data, next.binarization(), executor)
	if err != nil {
		return nil, false, err
	}
	c.last = next
	c.quantized = quantized
	c.applied++
	return quantized, true, nil
}

// applyAndSplit additionally re-runs the splitter whenever fresh quantized
// data was produced, keeping the split aligned with the cache.
func (c *quantizationCache) applyAndSplit(
	data Dataset,
	next quantizationTriple,
	params SplitParams,
	rng *utils.RandSource,
	executor *Executor,
) (TrainTestData, error) {
	quantized, fresh, err := c.apply(data, next, executor)
	if err != nil {
		return TrainTestData{}, err
	}
	if fresh {
		split, err := c.splitter.Split(quantized, params, rng, executor)
		if err != nil {
			return TrainTestData{}, err
		}
		c.split = split
	}
	return c.split, nil
}
