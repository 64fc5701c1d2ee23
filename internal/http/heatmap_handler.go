package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"behavior-analytics/internal/aggregators"
)

type heatmapHandler struct {
	heatmapService aggregators.HeatmapService
}

func NewHeatmapHandler(heatmapService aggregators.HeatmapService) AppHttpHandler {
	return &heatmapHandler{
		heatmapService: heatmapService,
	}
}

// Handle processes GET /heatmap/{session_id}?site_id=&page_url= requests.
func (h *heatmapHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	summary, err := h.heatmapService.SessionHeatmap(
		r.Context(),
		query.Get("site_id"),
		userID(r),
		chi.URLParam(r, "session_id"),
		query.Get("page_url"),
	)
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, summary)
}
