package aggregators

import (
	"context"
	"errors"
	"strings"

	"github.com/mileusna/useragent"

	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/metrics"
	"behavior-analytics/internal/stores"
)

const DefaultSessionListLimit = 50

//go:generate mockgen -source=session_service.go -destination=./mocks/session_service_mock.go -package=mocks
type SessionService interface {
	// ListSessions returns the latest version of every session of one site,
	// most recent first. status filters when non-empty; limit falls back to
	// the configured default when non-positive.
	ListSessions(ctx context.Context, siteID, userID string, status models.SessionStatus, limit int) (*models.SessionList, error)
	// SessionDetail returns the full read view of one session: latest
	// state, per-type counts, pages visited and the ordered event timeline.
	SessionDetail(ctx context.Context, siteID, userID, sessionID string) (*models.SessionDetail, error)
}

type sessionService struct {
	siteStore    stores.SiteStore
	sessionStore stores.SessionStore
	eventStore   stores.EventStore
	heatmapStore stores.HeatmapStore
	listLimit    int
}

func NewSessionService(
	siteStore stores.SiteStore,
	sessionStore stores.SessionStore,
	eventStore stores.EventStore,
	heatmapStore stores.HeatmapStore,
	listLimit int,
) SessionService {
	if listLimit <= 0 {
		listLimit = DefaultSessionListLimit
	}
	return &sessionService{
		siteStore:    siteStore,
		sessionStore: sessionStore,
		eventStore:   eventStore,
		heatmapStore: heatmapStore,
		listLimit:    listLimit,
	}
}

func (s *sessionService) ListSessions(ctx context.Context, siteID, userID string, status models.SessionStatus, limit int) (*models.SessionList, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		metricQueriesServedTotal.WithLabelValues("session_list", codeMissingSiteID).Inc()
		return nil, errMissingSiteID()
	}
	if status != "" && !status.IsValid() {
		metricQueriesServedTotal.WithLabelValues("session_list", codeInvalidStatusFilter).Inc()
		return nil, errInvalidStatusFilter(string(status))
	}
	if limit <= 0 {
		limit = s.listLimit
	}

	if _, err := s.siteStore.ResolveOwnedSite(ctx, siteID, userID); err != nil {
		if errors.Is(err, stores.ErrSiteNotFound) {
			metricQueriesServedTotal.WithLabelValues("session_list", codeSiteNotFound).Inc()
			return nil, errSiteNotFound(err)
		}
		return nil, errInternalStoreFailed(err)
	}

	sessions, err := s.sessionStore.ListSessions(ctx, siteID, status, limit)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}

	summaries := make([]*models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		browser, os := deriveClient(sess.UserAgent)
		summaries = append(summaries, &models.SessionSummary{
			SessionID:        sess.SessionID,
			VisitorID:        sess.VisitorID,
			FirstSeen:        sess.FirstSeen,
			LastSeen:         sess.LastSeen,
			UserAgent:        sess.UserAgent,
			Browser:          browser,
			OS:               os,
			Status:           sess.Status,
			DurationMs:       sess.DurationMs,
			EngagementTimeMs: sess.EngagementTimeMs,
			EventCount:       sess.EventCount,
		})
	}

	metricQueriesServedTotal.WithLabelValues("session_list", metrics.ValueNoError).Inc()
	return &models.SessionList{SiteID: siteID, Sessions: summaries}, nil
}

func (s *sessionService) SessionDetail(ctx context.Context, siteID, userID, sessionID string) (*models.SessionDetail, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		metricQueriesServedTotal.WithLabelValues("session_detail", codeMissingSiteID).Inc()
		return nil, errMissingSiteID()
	}

	if _, err := s.siteStore.ResolveOwnedSite(ctx, siteID, userID); err != nil {
		if errors.Is(err, stores.ErrSiteNotFound) {
			metricQueriesServedTotal.WithLabelValues("session_detail", codeSiteNotFound).Inc()
			return nil, errSiteNotFound(err)
		}
		return nil, errInternalStoreFailed(err)
	}

	sess, err := s.sessionStore.GetSession(ctx, siteID, sessionID)
	if err != nil {
		if errors.Is(err, stores.ErrSessionNotFound) {
			metricQueriesServedTotal.WithLabelValues("session_detail", codeSessionNotFound).Inc()
			return nil, errSessionNotFound(err)
		}
		return nil, errInternalStoreFailed(err)
	}

	events, err := s.eventStore.ListSessionEvents(ctx, siteID, sessionID)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}
	eventsByType, err := s.eventStore.CountSessionEventsByType(ctx, siteID, sessionID)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}
	pages, err := s.eventStore.ListSessionPages(ctx, siteID, sessionID)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}
	heatmapPoints, err := s.heatmapStore.CountSessionPoints(ctx, siteID, sessionID)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}

	browser, os := deriveClient(sess.UserAgent)

	metricQueriesServedTotal.WithLabelValues("session_detail", metrics.ValueNoError).Inc()
	return &models.SessionDetail{
		SessionID:        sess.SessionID,
		SiteID:           sess.SiteID,
		VisitorID:        sess.VisitorID,
		UserAgent:        sess.UserAgent,
		Browser:          browser,
		OS:               os,
		Language:         sess.Language,
		Platform:         sess.Platform,
		ScreenResolution: sess.ScreenResolution,
		FirstSeen:        sess.FirstSeen,
		LastSeen:         sess.LastSeen,
		Status:           sess.Status,
		DurationMs:       sess.DurationMs,
		EngagementTimeMs: sess.EngagementTimeMs,
		FinalScrollDepth: sess.FinalScrollDepth,
		TotalEvents:      int64(len(events)),
		HeatmapPoints:    heatmapPoints,
		EventsByType:     eventsByType,
		PagesVisited:     pages,
		Events:           events,
	}, nil
}

// deriveClient derives display browser and OS names from a raw user agent.
// Unknown agents yield empty strings.
func deriveClient(ua string) (browser, os string) {
	if ua == "" {
		return "", ""
	}
	parsed := useragent.Parse(ua)
	return parsed.Name, parsed.OS
}
