package http

import (
	"net/http"

	"lre-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries what handlers learned about a request (its service error and
// the report it touched) back to the logging and metrics middlewares.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	runID    string
	reportID string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) SetReport(runID, reportID string) {
	w.runID = runID
	w.reportID = reportID
}

// Report returns the run and report IDs set by the handler, empty when none was.
func (w *appResponseWriter) Report() (runID, reportID string) {
	return w.runID, w.reportID
}

// markReport records the report a handler served; a no-op outside the middleware chain.
func markReport(w http.ResponseWriter, runID, reportID string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetReport(runID, reportID)
	}
}
