package http

import (
	"net/http"

	"log-insights/internal/models"
	"log-insights/internal/queries"
)

type metricsHandler struct {
	queryService queries.QueryService
}

func NewMetricsHandler(queryService queries.QueryService) AppHttpHandler {
	return &metricsHandler{
		queryService: queryService,
	}
}

type metricsResponse struct {
	Metrics *models.MetricsSnapshot `json:"metrics"`
}

// Handle processes GET /api/metrics requests.
func (h *metricsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	minutes, err := intQueryParam(r, "minutes", defaultWindowMinutes)
	if err != nil {
		return err
	}

	snapshot, err := h.queryService.GetMetrics(r.Context(), minutes)
	if err != nil {
		return err
	}

	return writeJSON(w, metricsResponse{Metrics: snapshot})
}
