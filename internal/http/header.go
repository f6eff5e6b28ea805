package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID      = "x-request-id"
	headerIdempotencyKey = "idempotency-key"
	headerLocation       = "location"
	headerRetryAfter     = "retry-after"
	headerContentType    = "content-type"
	headerCacheControl   = "cache-control"

	contentTypeJSON = "application/json"

	// pendingRetryAfterSeconds is the poll interval suggested for pending reports.
	pendingRetryAfterSeconds = "1"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func reportLocation(runID, reportID string) string {
	return "/runs/" + runID + "/reports/" + reportID
}
