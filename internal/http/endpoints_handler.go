package http

import (
	"net/http"

	"log-insights/internal/models"
	"log-insights/internal/queries"
)

type endpointsHandler struct {
	queryService queries.QueryService
}

func NewEndpointsHandler(queryService queries.QueryService) AppHttpHandler {
	return &endpointsHandler{
		queryService: queryService,
	}
}

type endpointsResponse struct {
	Endpoints []*models.EndpointStat `json:"endpoints"`
}

// Handle processes GET /api/endpoints requests.
func (h *endpointsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	minutes, err := intQueryParam(r, "minutes", defaultWindowMinutes)
	if err != nil {
		return err
	}
	limit, err := intQueryParam(r, "limit", defaultEndpointLimit)
	if err != nil {
		return err
	}
	sortBy := stringQueryParam(r, "sort_by", defaultSortBy)
	order := stringQueryParam(r, "order", defaultOrder)

	stats, err := h.queryService.GetEndpointStats(r.Context(), minutes, sortBy, order, limit)
	if err != nil {
		return err
	}

	if stats == nil {
		stats = []*models.EndpointStat{}
	}
	return writeJSON(w, endpointsResponse{Endpoints: stats})
}
