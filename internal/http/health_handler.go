package http

import (
	"net/http"
)

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

// Handle processes GET /health liveness probes.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
