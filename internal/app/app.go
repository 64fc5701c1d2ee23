package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"behavior-analytics/internal/aggregators"
	internalhttp "behavior-analytics/internal/http"
	"behavior-analytics/internal/ingestors"
	"behavior-analytics/internal/migrations"
	"behavior-analytics/internal/shared/configs"
	"behavior-analytics/internal/shared/loggers"
	"behavior-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "behavior-analytics").
		Logger()

	// Initialize database
	db, err := stores.OpenDB(config.Database.DSN, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	migrationLogger := appLogger.With().Str(loggers.FieldComponent, "migrations").Logger()
	if err := migrations.RunMigrations(db, config.Database.AutoMigrate, migrationLogger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize stores
	siteStore := stores.NewSiteStore(db)
	sessionStore := stores.NewSessionStore(db)
	eventStore := stores.NewEventStore(db)
	heatmapStore := stores.NewHeatmapStore(db)
	batchStore := stores.NewAnalyticsBatchStore(db)

	// Initialize ingestion service
	classifier := ingestors.NewEventClassifier()
	governor := ingestors.NewSamplingGovernor(config.Ingestion.MouseSampleRate)
	ingestionService := ingestors.NewIngestionService(
		siteStore,
		sessionStore,
		batchStore,
		classifier,
		governor,
		config.Ingestion.MaxBatchBytes,
	)

	// Initialize query services
	rolluper := aggregators.NewHeatmapRolluper(config.Heatmap.BucketSize)
	heatmapService := aggregators.NewHeatmapService(siteStore, heatmapStore, rolluper)
	statsService := aggregators.NewStatsService(siteStore, sessionStore, eventStore, heatmapStore)
	sessionService := aggregators.NewSessionService(siteStore, sessionStore, eventStore, heatmapStore, config.Sessions.DefaultListLimit)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, statsService, sessionService, heatmapService, httpLogger)

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
		db:        db,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting behavior-analytics service on port %d (log_level=%s, mouse_sample_rate=%d, heatmap_bucket_size=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Ingestion.MouseSampleRate,
			app.config.Heatmap.BucketSize)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close database pool
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database connections closed")

	return nil
}
