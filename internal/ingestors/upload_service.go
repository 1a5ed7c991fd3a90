package ingestors

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"

	"log-insights/internal/logstores"
	"log-insights/internal/shared/loggers"
	"log-insights/internal/shared/metrics"
	"log-insights/internal/shared/svcerrors"
)

const maxUploadBytes = 8 * 1024 * 1024

// UploadResult reports how many records were appended to the log file and
// how many payload elements were dropped.
type UploadResult struct {
	AcceptedCount int
	RejectedCount int
	Path          string
}

// UploadService gates writes to the log file behind the shared credential.
// The payload may be JSONL, a JSON array, or a JSON object; container shape
// normalization and the append itself are the log store's job. No partial
// write is performed on rejection.
//
//go:generate mockgen -source=upload_service.go -destination=./mocks/upload_service_mock.go -package=mocks
type UploadService interface {
	UploadLog(ctx context.Context, apiKey string, r io.Reader) (*UploadResult, error)
}

type uploadService struct {
	logStore logstores.LogStore
	apiKey   string
}

func NewUploadService(logStore logstores.LogStore, apiKey string) UploadService {
	return &uploadService{
		logStore: logStore,
		apiKey:   apiKey,
	}
}

func (s *uploadService) UploadLog(ctx context.Context, apiKey string, r io.Reader) (*UploadResult, error) {
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		svcErr := errInvalidCredential()
		metricUploadsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	payload, svcErr := s.readPayload(r)
	if svcErr != nil {
		metricUploadsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	result, err := s.logStore.Append(ctx, payload)
	if err != nil {
		var appendErr *svcerrors.ServiceError
		if errors.Is(err, logstores.ErrInvalidPayload) {
			appendErr = errValidationFailed("payload must be JSONL, a JSON array, or a JSON object", err)
		} else {
			appendErr = errInternalAppendFailed(err)
		}
		metricUploadsTotal.WithLabelValues(appendErr.Code).Inc()
		return nil, appendErr
	}

	metricUploadsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricUploadRecordsTotal.WithLabelValues(outcomeAccepted).Add(float64(result.Accepted))
	metricUploadRecordsTotal.WithLabelValues(outcomeRejected).Add(float64(result.Rejected))

	loggers.Ctx(ctx).Info().
		Int("accepted", result.Accepted).
		Int("rejected", result.Rejected).
		Str(loggers.FieldLogFile, s.logStore.Path()).
		Msg("log upload appended")

	return &UploadResult{
		AcceptedCount: result.Accepted,
		RejectedCount: result.Rejected,
		Path:          s.logStore.Path(),
	}, nil
}

func (s *uploadService) readPayload(r io.Reader) ([]byte, *svcerrors.ServiceError) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxUploadBytes {
		return nil, errValidationFailed("payload too large: must be <= 8MB", nil)
	}
	if len(buf) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}
	return buf, nil
}
