package models

import (
	"strconv"
)

// DefaultPercentileTargets are the percentiles reported when none are configured.
var DefaultPercentileTargets = []float64{50, 90, 95, 99}

// PercentileResult holds the resolved percentiles of one group.
// Values is aligned with the target list of the run that produced it.
type PercentileResult struct {
	Key    GroupKey
	Values []float64
}

// NewZeroPercentileResult returns a result with every target set to 0.0.
func NewZeroPercentileResult(key GroupKey, numTargets int) PercentileResult {
	return PercentileResult{Key: key, Values: make([]float64, numTargets)}
}

// PercentileValue is a single labelled percentile of a report row.
type PercentileValue struct {
	Label  string  `json:"label"`
	Target float64 `json:"target"`
	Value  float64 `json:"value"`
}

// PercentileLabel renders a target as "p50", "p99.9", ...
func PercentileLabel(target float64) string {
	return "p" + strconv.FormatFloat(target, 'f', -1, 64)
}
