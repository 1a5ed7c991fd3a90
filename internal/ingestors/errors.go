package ingestors

import (
	"fmt"

	"log-insights/internal/shared/svcerrors"
)

// UploadService errors
const (
	codeValidationFailed  = "ING_1000"
	codeInvalidCredential = "ING_1100"

	codeInternalAppendFailed = "ING_9000"
)

// errValidationFailed returns an error for upload payload validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInvalidCredential returns an error when the shared upload credential
// is missing or incorrect. The message does not say which.
func errInvalidCredential() *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeInvalidCredential, "missing or invalid api key", nil)
}

// errInternalAppendFailed returns an error when the log file append fails.
func errInternalAppendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAppendFailed, fmt.Errorf("logAppendFailed: %w", cause))
}
