package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-insights/internal/aggregators"
	internalhttp "log-insights/internal/http"
	"log-insights/internal/ingestors"
	"log-insights/internal/logstores"
	"log-insights/internal/normalizers"
	"log-insights/internal/queries"
	"log-insights/internal/shared/configs"
	"log-insights/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-insights").
		Logger()

	// Initialize log store
	logStore, err := logstores.NewLogStore(config.LogFile.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log store: %w", err)
	}

	// Initialize query service
	normalizer := normalizers.New()
	windowSelector := aggregators.NewWindowSelector()
	aggregator := aggregators.New()
	queryService := queries.NewQueryService(
		logStore,
		normalizer,
		windowSelector,
		aggregator,
		config.Query.MaxWindowMinutes,
		config.Query.MaxLimit,
	)

	// Initialize upload service
	uploadService := ingestors.NewUploadService(logStore, config.Upload.APIKey)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(queryService, uploadService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-insights service on port %d (log_level=%s, log_file=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.LogFile.Path)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
