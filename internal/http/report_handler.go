package http

import (
	"net/http"

	"lre-analytics/internal/reporting"

	"github.com/go-chi/chi/v5"
)

const (
	paramRunID    = "runID"
	paramReportID = "reportID"
)

type requestReportHandler struct {
	reportService reporting.ReportService
}

func NewRequestReportHandler(reportService reporting.ReportService) AppHttpHandler {
	return &requestReportHandler{reportService: reportService}
}

// Handle processes POST /runs/{runID}/reports requests.
func (h *requestReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runID := chi.URLParam(r, paramRunID)
	accepted, err := h.reportService.RequestReport(r.Context(), runID, idempotencyKey(r), r.Body)
	if err != nil {
		return err
	}

	markReport(w, accepted.RunID, accepted.ReportID)
	w.Header().Set(headerLocation, reportLocation(accepted.RunID, accepted.ReportID))
	writeJSON(w, r, http.StatusAccepted, accepted)
	return nil
}

type getReportHandler struct {
	reportService reporting.ReportService
}

func NewGetReportHandler(reportService reporting.ReportService) AppHttpHandler {
	return &getReportHandler{reportService: reportService}
}

// Handle processes GET /runs/{runID}/reports/{reportID} requests.
// A job still being built answers 202 with Retry-After so clients know to poll again.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runID, reportID := chi.URLParam(r, paramRunID), chi.URLParam(r, paramReportID)
	job, err := h.reportService.GetReport(r.Context(), runID, reportID)
	if err != nil {
		return err
	}
	markReport(w, runID, reportID)
	metricReportPollsTotal.WithLabelValues(string(job.Status)).Inc()

	status := http.StatusOK
	if !job.IsDone() {
		status = http.StatusAccepted
		w.Header().Set(headerRetryAfter, pendingRetryAfterSeconds)
	}
	writeJSON(w, r, status, job)
	return nil
}

type listReportsHandler struct {
	reportService reporting.ReportService
}

func NewListReportsHandler(reportService reporting.ReportService) AppHttpHandler {
	return &listReportsHandler{reportService: reportService}
}

type listReportsResponse struct {
	RunID   string                     `json:"runId"`
	Reports []reporting.ReportListItem `json:"reports"`
}

// Handle processes GET /runs/{runID}/reports requests.
func (h *listReportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runID := chi.URLParam(r, paramRunID)
	items, err := h.reportService.ListReports(r.Context(), runID)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, listReportsResponse{RunID: runID, Reports: items})
	return nil
}
