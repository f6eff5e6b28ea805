package analytics

import (
	"fmt"

	"lre-analytics/internal/shared/svcerrors"
)

// AnalyticsService errors
const (
	codeInvalidRunRequest = "ANA_1000"
	codeRunNotFound       = "ANA_1001"

	codeInternalDataSourceFailed = "ANA_9000"
	codeInternalSummaryFailed    = "ANA_9001"
)

// errInvalidRunRequest returns an error when the run request or its configuration is invalid.
func errInvalidRunRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRunRequest, msg, cause)
}

func errRunNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRunNotFound, "run not found", cause)
}

// errInternalDataSourceFailed returns an error when the batch data source fails mid-run.
func errInternalDataSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDataSourceFailed, fmt.Errorf("dataSourceFailed: %w", cause))
}

// errInternalSummaryFailed returns an error when the summary statistics provider fails.
func errInternalSummaryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryFailed, fmt.Errorf("summaryProviderFailed: %w", cause))
}
