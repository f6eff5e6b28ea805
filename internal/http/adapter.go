package http

import (
	"encoding/json"
	"net/http"

	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
)

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	RunID            string `json:"runId,omitempty"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// AppHttpHandler is a handler that reports failures as errors instead of writing them.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// errorHandlingAdapter turns the error of an AppHttpHandler into a JSON error response.
// Errors that are not service errors become SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr := svcerrors.FromError(err)

		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldRunID, chi.URLParam(r, paramRunID)).
				Msg("internal error in handler")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// set serviceError for middlewares
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	errorResponse := ErrorResponse{
		RequestID:        requestID(r),
		RunID:            chi.URLParam(r, paramRunID),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	}
	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	writeJSON(w, r, svcErr.HttpStatusCode, errorResponse)
}

// writeJSON writes body with status. Responses describe report jobs whose state changes
// between polls, so none of them may be cached.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.Header().Set(headerCacheControl, "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response body")
	}
}
