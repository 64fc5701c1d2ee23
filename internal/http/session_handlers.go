package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"behavior-analytics/internal/aggregators"
	"behavior-analytics/internal/models"
)

type sessionListHandler struct {
	sessionService aggregators.SessionService
}

func NewSessionListHandler(sessionService aggregators.SessionService) AppHttpHandler {
	return &sessionListHandler{
		sessionService: sessionService,
	}
}

// Handle processes GET /sessions?site_id=&status=&limit= requests.
func (h *sessionListHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidLimitParam(raw, err)
		}
		limit = parsed
	}

	list, err := h.sessionService.ListSessions(
		r.Context(),
		query.Get("site_id"),
		userID(r),
		models.SessionStatus(query.Get("status")),
		limit,
	)
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, list)
}

type sessionDetailHandler struct {
	sessionService aggregators.SessionService
}

func NewSessionDetailHandler(sessionService aggregators.SessionService) AppHttpHandler {
	return &sessionDetailHandler{
		sessionService: sessionService,
	}
}

// Handle processes GET /sessions/{session_id}?site_id= requests.
func (h *sessionDetailHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	detail, err := h.sessionService.SessionDetail(
		r.Context(),
		r.URL.Query().Get("site_id"),
		userID(r),
		chi.URLParam(r, "session_id"),
	)
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, detail)
}
