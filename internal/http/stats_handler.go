package http

import (
	"net/http"

	"behavior-analytics/internal/aggregators"
)

type statsHandler struct {
	statsService aggregators.StatsService
}

func NewStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &statsHandler{
		statsService: statsService,
	}
}

// Handle processes GET /stats?site_id= requests.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.statsService.SiteStats(r.Context(), r.URL.Query().Get("site_id"), userID(r))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, stats)
}
