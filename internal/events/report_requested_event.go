package events

import (
	"time"

	"lre-analytics/internal/models"
)

// ReportRequestedEvent asks the report builders to compute the report of one run.
// Events are produced by the report service once the pending job is stored and
// consumed by one partition worker per run.
//
// Example JSON:
//
//	{
//	  "reportId": "01JAB8Q8T0Q6M4V3CJ4Y1X2Z9K",
//	  "runId": "4711",
//	  "strategy": "digest",
//	  "percentiles": [50, 90, 95, 99],
//	  "batchSize": 50000,
//	  "requestedAt": "2026-10-18T09:00:00Z"
//	}
//
// Empty strategy, percentiles or a zero batch size fall back to the configured defaults.
type ReportRequestedEvent struct {
	ReportID    string          `json:"reportId"`
	RunID       string          `json:"runId"`
	Strategy    models.Strategy `json:"strategy,omitempty"`
	Percentiles []float64       `json:"percentiles,omitempty"`
	BatchSize   int             `json:"batchSize,omitempty"`
	RequestedAt time.Time       `json:"requestedAt"`
}
