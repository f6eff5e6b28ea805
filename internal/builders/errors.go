package builders

import (
	"fmt"

	"lre-analytics/internal/shared/svcerrors"
)

// ReportBuilder errors
const (
	codeInternalReportStoreFailed = "BLD_9000"

	// codeSkipped labels redelivered events whose report is already done.
	codeSkipped = "skipped"
)

// errInternalReportStoreFailed returns an error when reading or saving the report job fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
