package reporting

import (
	"lre-analytics/internal/shared/metrics"
)

var (
	metricReportRequestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "report_requested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
