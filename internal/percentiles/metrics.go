package percentiles

import (
	"lre-analytics/internal/shared/metrics"
)

const (
	modeVectorized = "vectorized"
	modePerRow     = "per_row"
)

var (
	metricSketchUpdatesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPercentiles,
			Name:      "sketch_updates_total",
		},
		[]string{"kind", "mode"},
	)
)
