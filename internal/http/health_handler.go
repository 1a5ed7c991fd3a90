package http

import (
	"net/http"

	"log-insights/internal/queries"
)

type healthHandler struct {
	queryService queries.QueryService
}

func NewHealthHandler(queryService queries.QueryService) AppHttpHandler {
	return &healthHandler{
		queryService: queryService,
	}
}

// Handle processes GET /api/health requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, h.queryService.GetHealth(r.Context()))
}
