package http

import (
	"net/http"

	"behavior-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// CollectResponse acknowledges one ingested batch. The counts let the
// client SDK verify its sampling accounting.
type CollectResponse struct {
	Status             string `json:"status"`
	EventsStored       int    `json:"events_stored"`
	MouseEventsSampled int    `json:"mouse_events_sampled"`
}

type collectHandler struct {
	ingestionService ingestors.IngestionService
}

func NewCollectHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &collectHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /api/analytics requests. The X-Site-ID header
// takes precedence over the payload's site_id field.
func (h *collectHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.CollectBatch(r.Context(), siteID(r), r.Body)
	if err != nil {
		return err
	}

	return respondJSON(w, http.StatusOK, CollectResponse{
		Status:             "success",
		EventsStored:       result.EventsStored,
		MouseEventsSampled: result.MouseEventsSampled,
	})
}
