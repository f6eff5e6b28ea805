package http

import (
	"net/http"

	"lre-analytics/internal/reporting"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reporting.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	requestReportHandler := NewRequestReportHandler(reportService)
	getReportHandler := NewGetReportHandler(reportService)
	listReportsHandler := NewListReportsHandler(reportService)

	// Routes
	router.Post("/runs/{runID}/reports", errorHandlingAdapter(requestReportHandler))
	router.Get("/runs/{runID}/reports", errorHandlingAdapter(listReportsHandler))
	router.Get("/runs/{runID}/reports/{reportID}", errorHandlingAdapter(getReportHandler))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
