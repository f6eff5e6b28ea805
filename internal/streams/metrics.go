package streams

import (
	"lre-analytics/internal/shared/metrics"
)

var (
	streamReportJob = "report_job"

	metricReportJobProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_job_published_total",
		},
		[]string{"stream_id"},
	)

	metricReportJobConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_job_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricQueueDepth = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "queue_depth",
			Help:      "Messages published but not yet picked up by a worker.",
		},
		[]string{"stream_id"},
	)
)
