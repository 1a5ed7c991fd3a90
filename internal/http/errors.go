package http

import "log-insights/internal/shared/svcerrors"

const (
	codeInvalidQueryParam = "API_1000"
)

func errInvalidQueryParam(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, message, cause)
}
