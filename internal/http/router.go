package http

import (
	"net/http"

	"log-insights/internal/ingestors"
	"log-insights/internal/queries"
	"log-insights/internal/shared/loggers"
	"log-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(queryService queries.QueryService, uploadService ingestors.UploadService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	uploadLogHandler := NewUploadLogHandler(uploadService)
	healthHandler := NewHealthHandler(queryService)
	metricsHandler := NewMetricsHandler(queryService)
	endpointsHandler := NewEndpointsHandler(queryService)
	errorsHandler := NewErrorsHandler(queryService)
	trafficHandler := NewTrafficHandler(queryService)
	debugSampleHandler := NewDebugSampleHandler(queryService)

	// Routes
	router.Route("/api", func(api chi.Router) {
		api.Post("/upload-log", errorHandlingAdapter(uploadLogHandler))
		api.Get("/health", errorHandlingAdapter(healthHandler))
		api.Get("/metrics", errorHandlingAdapter(metricsHandler))
		api.Get("/endpoints", errorHandlingAdapter(endpointsHandler))
		api.Get("/errors", errorHandlingAdapter(errorsHandler))
		api.Get("/traffic", errorHandlingAdapter(trafficHandler))
		api.Get("/debug/sample", errorHandlingAdapter(debugSampleHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
