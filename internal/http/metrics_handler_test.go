package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-insights/internal/models"
	querymocks "log-insights/internal/queries/mocks"
	"log-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetricsHandler_Handle_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewMetricsHandler(mockQueryService)

	snapshot := models.NewEmptyMetricsSnapshot()
	snapshot.TotalRequests = 42

	mockQueryService.EXPECT().
		GetMetrics(gomock.Any(), defaultWindowMinutes).
		Return(snapshot, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var response metricsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 42, response.Metrics.TotalRequests)
}

func TestMetricsHandler_Handle_ExplicitWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewMetricsHandler(mockQueryService)

	mockQueryService.EXPECT().
		GetMetrics(gomock.Any(), 15).
		Return(models.NewEmptyMetricsSnapshot(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics?minutes=15", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsHandler_Handle_NonIntegerWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Service must not be called when the parameter fails to parse.
	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewMetricsHandler(mockQueryService)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics?minutes=soon", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidQueryParam, svcErr.Code)
	assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
}

func TestMetricsHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewMetricsHandler(mockQueryService)

	expectedErr := svcerrors.NewInvalidArgumentError("QRY_1000", "window_minutes must be >= 1", nil)
	mockQueryService.EXPECT().
		GetMetrics(gomock.Any(), -1).
		Return(nil, expectedErr)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics?minutes=-1", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1000", svcErr.Code)
}
