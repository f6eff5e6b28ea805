package analytics

import (
	"lre-analytics/internal/shared/metrics"
)

const (
	fieldOutcome     = "outcome"
	fieldDisposition = "disposition"

	outcomeResolved     = "resolved"
	outcomeInsufficient = "insufficient"
	outcomeFailed       = "failed"

	rowsFolded  = "folded"
	rowsDropped = "dropped"
)

var (
	metricBatchesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "batches_processed_total",
		},
		[]string{metrics.FieldStrategy},
	)
	metricRowsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "rows_total",
		},
		[]string{metrics.FieldStrategy, fieldDisposition},
	)
	metricGroupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "groups_total",
		},
		[]string{metrics.FieldStrategy, fieldOutcome},
	)
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "runs_total",
		},
		[]string{metrics.FieldStrategy, metrics.FieldErrorCode},
	)
	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "run_duration_seconds",
			Buckets:   metrics.RunDurationBuckets,
		},
		[]string{metrics.FieldStrategy},
	)
)
