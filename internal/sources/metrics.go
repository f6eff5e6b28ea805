package sources

import (
	"lre-analytics/internal/shared/metrics"
)

const fieldDriver = "driver"

var (
	metricBatchesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "batches_read_total",
		},
		[]string{fieldDriver},
	)
	metricRowsReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "rows_read_total",
		},
		[]string{fieldDriver},
	)
)
