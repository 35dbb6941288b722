package tuning

import "strings"

// DefaultMetricDirectory knows the direction of the stock metric set. Metric
// descriptions may carry parameters after a colon ("Quantile:alpha=0.9"); the
// lookup goes by the base name.
type DefaultMetricDirectory struct{}

// BestValueDirection returns the direction of a known metric and
// DirectionUndefined for everything else.
func (DefaultMetricDirectory) BestValueDirection(metric string) MetricDirection {
	name := metric
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "Logloss", "CrossEntropy", "RMSE", "MAE", "MAPE", "Poisson",
		"Quantile", "LogLinQuantile", "SMAPE", "MSLE", "MedianAbsoluteError",
		"Huber", "MultiClass", "MultiClassOneVsAll", "PairLogit", "QueryRMSE":
		return DirectionMin
	case "AUC", "Accuracy", "BalancedAccuracy", "Precision", "Recall", "F1",
		"TotalF1", "Kappa", "WKappa", "MCC", "R2", "NDCG":
		return DirectionMax
	default:
		return DirectionUndefined
	}
}
