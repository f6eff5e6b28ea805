package builders

import (
	"lre-analytics/internal/shared/metrics"
)

var (
	metricReportsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "reports_built_total",
		},
		[]string{metrics.FieldStrategy, metrics.FieldErrorCode},
	)
)
