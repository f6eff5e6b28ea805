package models

import "time"

// ReportRow is a summary row merged with its percentiles (zero-filled when missing).
type ReportRow struct {
	SummaryRow
	Percentiles []PercentileValue `json:"percentiles"`
}

// Percentile returns the value for target, or 0 when the row does not carry it.
func (r ReportRow) Percentile(target float64) float64 {
	for _, p := range r.Percentiles {
		if p.Target == target {
			return p.Value
		}
	}
	return 0
}

// RunStats are the counters collected while streaming one run.
type RunStats struct {
	RowsRead     int64 `json:"rowsRead"`
	RowsDropped  int64 `json:"rowsDropped"`
	Batches      int64 `json:"batches"`
	Groups       int   `json:"groups"`
	Resolved     int   `json:"resolved"`
	Insufficient int   `json:"insufficient"`
	Failed       int   `json:"failed"`
}

// Report is the final per-group report of one analytics run.
//
// Example JSON (abridged):
//
//	{
//	  "reportId": "01JAB3NDEKTSV4RRFFQ69G5FAV",
//	  "runId": "1042",
//	  "strategy": "exact",
//	  "targets": [50, 90, 95, 99],
//	  "rows": [
//	    {
//	      "scriptName": "Login",
//	      "transactionName": "Submit",
//	      "transactionCount": 3,
//	      ...
//	      "percentiles": [{"label": "p50", "target": 50, "value": 150}, ...]
//	    }
//	  ],
//	  "stats": {"rowsRead": 3, "rowsDropped": 0, ...},
//	  "generatedAt": "2025-12-28T18:03:00Z"
//	}
type Report struct {
	ReportID    string      `json:"reportId"`
	RunID       string      `json:"runId"`
	Strategy    Strategy    `json:"strategy"`
	Targets     []float64   `json:"targets"`
	Rows        []ReportRow `json:"rows"`
	Stats       RunStats    `json:"stats"`
	GeneratedAt time.Time   `json:"generatedAt"`
}
