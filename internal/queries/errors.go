package queries

import (
	"fmt"

	"log-insights/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeValidationFailed = "QRY_1000"

	codeInternalLogScanFailed = "QRY_9000"
)

// errValidationFailed returns an error for invalid query parameters.
// The message always names the offending parameter.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalLogScanFailed returns an error when the log file scan fails
// for a reason other than the file being absent.
func errInternalLogScanFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogScanFailed, fmt.Errorf("logScanFailed: %w", cause))
}
