package aggregators

import (
	"context"
	"errors"
	"strings"

	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/loggers"
	"behavior-analytics/internal/shared/metrics"
	"behavior-analytics/internal/stores"
)

//go:generate mockgen -source=heatmap_service.go -destination=./mocks/heatmap_service_mock.go -package=mocks
type HeatmapService interface {
	// SessionHeatmap returns the bucketed heatmap of one session, optionally
	// restricted to a single page URL. The result is recomputed from raw
	// points on every call.
	SessionHeatmap(ctx context.Context, siteID, userID, sessionID, pageURL string) (*models.HeatmapSummary, error)
}

type heatmapService struct {
	siteStore    stores.SiteStore
	heatmapStore stores.HeatmapStore
	rolluper     HeatmapRolluper
}

func NewHeatmapService(
	siteStore stores.SiteStore,
	heatmapStore stores.HeatmapStore,
	rolluper HeatmapRolluper,
) HeatmapService {
	return &heatmapService{
		siteStore:    siteStore,
		heatmapStore: heatmapStore,
		rolluper:     rolluper,
	}
}

func (s *heatmapService) SessionHeatmap(ctx context.Context, siteID, userID, sessionID, pageURL string) (*models.HeatmapSummary, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		metricQueriesServedTotal.WithLabelValues("session_heatmap", codeMissingSiteID).Inc()
		return nil, errMissingSiteID()
	}

	if _, err := s.siteStore.ResolveOwnedSite(ctx, siteID, userID); err != nil {
		if errors.Is(err, stores.ErrSiteNotFound) {
			metricQueriesServedTotal.WithLabelValues("session_heatmap", codeSiteNotFound).Inc()
			return nil, errSiteNotFound(err)
		}
		return nil, errInternalStoreFailed(err)
	}

	// No session_state lookup here: points may reference a session with no
	// visible state row, and an unknown or empty session is an empty heatmap.
	points, err := s.heatmapStore.ListPoints(ctx, siteID, sessionID, pageURL)
	if err != nil {
		return nil, errInternalStoreFailed(err)
	}

	buckets, total := s.rolluper.Rollup(points)

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldSiteID, siteID).
		Str(loggers.FieldSessionID, sessionID).
		Msgf("rolled up %d points into %d buckets", total, len(buckets))
	metricQueriesServedTotal.WithLabelValues("session_heatmap", metrics.ValueNoError).Inc()

	return &models.HeatmapSummary{
		SiteID:      siteID,
		SessionID:   sessionID,
		PageURL:     pageURL,
		TotalPoints: total,
		Heatmap:     buckets,
	}, nil
}
