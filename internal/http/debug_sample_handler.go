package http

import (
	"net/http"

	"log-insights/internal/queries"
)

type debugSampleHandler struct {
	queryService queries.QueryService
}

func NewDebugSampleHandler(queryService queries.QueryService) AppHttpHandler {
	return &debugSampleHandler{
		queryService: queryService,
	}
}

// Handle processes GET /api/debug/sample requests.
func (h *debugSampleHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	n, err := intQueryParam(r, "n", defaultSampleSize)
	if err != nil {
		return err
	}

	sample, err := h.queryService.GetDebugSample(r.Context(), n)
	if err != nil {
		return err
	}

	return writeJSON(w, sample)
}
