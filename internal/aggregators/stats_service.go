package aggregators

import (
	"context"
	"errors"
	"strings"

	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/metrics"
	"behavior-analytics/internal/stores"
)

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// SiteStats computes the per-site aggregate counters on demand. Nothing
	// is cached or precomputed; repeated calls without intervening writes
	// return identical results.
	SiteStats(ctx context.Context, siteID, userID string) (*models.SiteStats, error)
}

type statsService struct {
	siteStore    stores.SiteStore
	sessionStore stores.SessionStore
	eventStore   stores.EventStore
	heatmapStore stores.HeatmapStore
}

func NewStatsService(
	siteStore stores.SiteStore,
	sessionStore stores.SessionStore,
	eventStore stores.EventStore,
	heatmapStore stores.HeatmapStore,
) StatsService {
	return &statsService{
		siteStore:    siteStore,
		sessionStore: sessionStore,
		eventStore:   eventStore,
		heatmapStore: heatmapStore,
	}
}

func (s *statsService) SiteStats(ctx context.Context, siteID, userID string) (*models.SiteStats, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		metricQueriesServedTotal.WithLabelValues("site_stats", codeMissingSiteID).Inc()
		return nil, errMissingSiteID()
	}

	if _, err := s.siteStore.ResolveOwnedSite(ctx, siteID, userID); err != nil {
		if errors.Is(err, stores.ErrSiteNotFound) {
			metricQueriesServedTotal.WithLabelValues("site_stats", codeSiteNotFound).Inc()
			return nil, errSiteNotFound(err)
		}
		return nil, errInternalStoreFailed(err)
	}

	stats := &models.SiteStats{SiteID: siteID}

	var err error
	if stats.TotalEvents, err = s.eventStore.CountEvents(ctx, siteID); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.EventsByType, err = s.eventStore.CountEventsByType(ctx, siteID); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.TotalSessions, err = s.sessionStore.CountSessions(ctx, siteID); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.ActiveSessions, err = s.sessionStore.CountSessionsByStatus(ctx, siteID, models.SessionActive); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.EndedSessions, err = s.sessionStore.CountSessionsByStatus(ctx, siteID, models.SessionEnded); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.HeatmapPoints, err = s.heatmapStore.CountPoints(ctx, siteID); err != nil {
		return nil, errInternalStoreFailed(err)
	}
	if stats.AvgSessionDurationMs, err = s.sessionStore.AvgEndedSessionDurationMs(ctx, siteID); err != nil {
		return nil, errInternalStoreFailed(err)
	}

	metricQueriesServedTotal.WithLabelValues("site_stats", metrics.ValueNoError).Inc()
	return stats, nil
}
