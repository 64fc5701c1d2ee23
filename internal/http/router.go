package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"behavior-analytics/internal/aggregators"
	"behavior-analytics/internal/ingestors"
	"behavior-analytics/internal/shared/loggers"
	"behavior-analytics/internal/shared/metrics"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	statsService aggregators.StatsService,
	sessionService aggregators.SessionService,
	heatmapService aggregators.HeatmapService,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	collectHandler := NewCollectHandler(ingestionService)
	statsHandler := NewStatsHandler(statsService)
	sessionListHandler := NewSessionListHandler(sessionService)
	sessionDetailHandler := NewSessionDetailHandler(sessionService)
	heatmapHandler := NewHeatmapHandler(heatmapService)
	healthHandler := NewHealthHandler()

	// Routes
	router.Post("/api/analytics", errorHandlingAdapter(collectHandler))
	router.Get("/stats", errorHandlingAdapter(statsHandler))
	router.Get("/sessions", errorHandlingAdapter(sessionListHandler))
	router.Get("/sessions/{session_id}", errorHandlingAdapter(sessionDetailHandler))
	router.Get("/heatmap/{session_id}", errorHandlingAdapter(heatmapHandler))
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
