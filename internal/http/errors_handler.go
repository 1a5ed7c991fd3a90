package http

import (
	"net/http"

	"log-insights/internal/models"
	"log-insights/internal/queries"
)

type errorsHandler struct {
	queryService queries.QueryService
}

func NewErrorsHandler(queryService queries.QueryService) AppHttpHandler {
	return &errorsHandler{
		queryService: queryService,
	}
}

type errorsResponse struct {
	Errors []*models.RequestEvent `json:"errors"`
}

// Handle processes GET /api/errors requests.
func (h *errorsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQueryParam(r, "limit", defaultErrorLimit)
	if err != nil {
		return err
	}

	events, err := h.queryService.GetRecentErrors(r.Context(), limit)
	if err != nil {
		return err
	}

	if events == nil {
		events = []*models.RequestEvent{}
	}
	return writeJSON(w, errorsResponse{Errors: events})
}
