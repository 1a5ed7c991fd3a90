package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ingestormocks "log-insights/internal/ingestors/mocks"
	"log-insights/internal/models"
	"log-insights/internal/queries"
	querymocks "log-insights/internal/queries/mocks"
	"log-insights/internal/shared/loggers"
	"log-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *querymocks.MockQueryService, *ingestormocks.MockUploadService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	mockUploadService := ingestormocks.NewMockUploadService(ctrl)

	logger, err := loggers.New("info")
	require.NoError(t, err)

	return NewRouter(mockQueryService, mockUploadService, logger), mockQueryService, mockUploadService
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router, mockQueryService, _ := newTestRouter(t)

	mockQueryService.EXPECT().
		GetHealth(gomock.Any()).
		Return(&models.HealthStatus{
			Status: models.StatusOK,
			LogFile: models.LogFileStatus{
				Exists:     true,
				Path:       "/data/monitoring.jsonl",
				SizeBytes:  128,
				TotalLines: 2,
			},
			LatestTimestamp: "2025-06-01T12:00:00Z",
		})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var health models.HealthStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, models.StatusOK, health.Status)
	assert.True(t, health.LogFile.Exists)
	assert.Equal(t, 2, health.LogFile.TotalLines)
}

func TestRouter_Errors(t *testing.T) {
	t.Parallel()

	router, mockQueryService, _ := newTestRouter(t)

	status := 500
	mockQueryService.EXPECT().
		GetRecentErrors(gomock.Any(), defaultErrorLimit).
		Return([]*models.RequestEvent{
			{
				Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Level:      "error",
				Method:     "GET",
				Path:       "/orders",
				StatusCode: &status,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/errors", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response errorsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "/orders", response.Errors[0].Path)
}

func TestRouter_Traffic(t *testing.T) {
	t.Parallel()

	router, mockQueryService, _ := newTestRouter(t)

	mockQueryService.EXPECT().
		GetHourlyTraffic(gomock.Any(), defaultTrafficWindowMinutes).
		Return([]*models.HourlyBucket{
			{Hour: "2025-06-01T11:00Z", Count: 0},
			{Hour: "2025-06-01T12:00Z", Count: 7},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/traffic", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response trafficResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.HourlyDistribution, 2)
	assert.Equal(t, int64(7), response.HourlyDistribution[1].Count)
}

func TestRouter_DebugSample(t *testing.T) {
	t.Parallel()

	router, mockQueryService, _ := newTestRouter(t)

	mockQueryService.EXPECT().
		GetDebugSample(gomock.Any(), 2).
		Return(&queries.DebugSample{
			Raw:                []string{`{"a":1}`, "garbage"},
			Parsed:             []queries.ParsedLine{{}, {ParseError: "invalid json"}},
			TotalParseFailures: 1,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/debug/sample?n=2", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var sample queries.DebugSample
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sample))
	assert.Len(t, sample.Raw, 2)
	assert.Equal(t, 1, sample.TotalParseFailures)
}

func TestRouter_UploadUnauthorized(t *testing.T) {
	t.Parallel()

	router, _, mockUploadService := newTestRouter(t)

	mockUploadService.EXPECT().
		UploadLog(gomock.Any(), "wrong", gomock.Any()).
		Return(nil, svcerrors.NewUnauthorizedError("ING_1100", "missing or invalid api key", nil))

	req := httptest.NewRequest(http.MethodPost, "/api/upload-log", nil)
	req.Header.Set(headerAPIKey, "wrong")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "unauthorized", errorResponse.ErrorCategory)
	assert.Equal(t, "ING_1100", errorResponse.ErrorCode)
	assert.NotEmpty(t, errorResponse.RequestID)
}

func TestRouter_ValidationErrorResponse(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	// Non-integer minutes never reaches the query service.
	req := httptest.NewRequest(http.MethodGet, "/api/metrics?minutes=abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "invalid_argument", errorResponse.ErrorCategory)
	assert.Equal(t, codeInvalidQueryParam, errorResponse.ErrorCode)
}

func TestRouter_PrometheusExposition(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}
