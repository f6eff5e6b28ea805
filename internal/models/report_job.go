package models

import "time"

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusFailed    ReportStatus = "failed"
)

// ReportJob tracks one requested report from acceptance to its final report.
//
// Example JSON of a failed job:
//
//	{
//	  "reportId": "01JAB8Q8T0Q6M4V3CJ4Y1X2Z9K",
//	  "runId": "4711",
//	  "status": "failed",
//	  "errorCode": "ANA_1001",
//	  "errorMessage": "run not found",
//	  "requestedAt": "2026-10-18T09:00:00Z",
//	  "updatedAt": "2026-10-18T09:00:01Z"
//	}
type ReportJob struct {
	ReportID     string       `json:"reportId"`
	RunID        string       `json:"runId"`
	Status       ReportStatus `json:"status"`
	ErrorCode    string       `json:"errorCode,omitempty"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
	Report       *Report      `json:"report,omitempty"`
	RequestedAt  time.Time    `json:"requestedAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func NewPendingReportJob(runID, reportID string, requestedAt time.Time) *ReportJob {
	return &ReportJob{
		ReportID:    reportID,
		RunID:       runID,
		Status:      ReportStatusPending,
		RequestedAt: requestedAt,
		UpdatedAt:   requestedAt,
	}
}

func (j *ReportJob) Complete(report *Report, at time.Time) {
	j.Status = ReportStatusCompleted
	j.Report = report
	j.ErrorCode = ""
	j.ErrorMessage = ""
	j.UpdatedAt = at
}

func (j *ReportJob) Fail(code, message string, at time.Time) {
	j.Status = ReportStatusFailed
	j.Report = nil
	j.ErrorCode = code
	j.ErrorMessage = message
	j.UpdatedAt = at
}

func (j *ReportJob) IsDone() bool {
	return j.Status == ReportStatusCompleted || j.Status == ReportStatusFailed
}
