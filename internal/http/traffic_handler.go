package http

import (
	"net/http"

	"log-insights/internal/models"
	"log-insights/internal/queries"
)

type trafficHandler struct {
	queryService queries.QueryService
}

func NewTrafficHandler(queryService queries.QueryService) AppHttpHandler {
	return &trafficHandler{
		queryService: queryService,
	}
}

type trafficResponse struct {
	HourlyDistribution []*models.HourlyBucket `json:"hourly_distribution"`
}

// Handle processes GET /api/traffic requests.
func (h *trafficHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	minutes, err := intQueryParam(r, "minutes", defaultTrafficWindowMinutes)
	if err != nil {
		return err
	}

	buckets, err := h.queryService.GetHourlyTraffic(r.Context(), minutes)
	if err != nil {
		return err
	}

	return writeJSON(w, trafficResponse{HourlyDistribution: buckets})
}
