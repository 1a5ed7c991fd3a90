package http

import (
	"net/http"

	"log-insights/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type uploadLogHandler struct {
	uploadService ingestors.UploadService
}

func NewUploadLogHandler(uploadService ingestors.UploadService) AppHttpHandler {
	return &uploadLogHandler{
		uploadService: uploadService,
	}
}

type uploadLogResponse struct {
	Status        string `json:"status"`
	SavedAs       string `json:"saved_as"`
	AcceptedCount int    `json:"accepted_count"`
	RejectedCount int    `json:"rejected_count"`
	Path          string `json:"path"`
}

// Handle processes POST /api/upload-log requests.
func (h *uploadLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.uploadService.UploadLog(r.Context(), apiKey(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, uploadLogResponse{
		Status:        "ok",
		SavedAs:       "jsonl",
		AcceptedCount: result.AcceptedCount,
		RejectedCount: result.RejectedCount,
		Path:          result.Path,
	})
}
