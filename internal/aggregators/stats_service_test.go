package aggregators_test

import (
	"context"
	"testing"

	"behavior-analytics/internal/aggregators"
	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/svcerrors"
	"behavior-analytics/internal/stores"
	storemocks "behavior-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type statsServiceMocks struct {
	siteStore    *storemocks.MockSiteStore
	sessionStore *storemocks.MockSessionStore
	eventStore   *storemocks.MockEventStore
	heatmapStore *storemocks.MockHeatmapStore
}

func newStatsService(ctrl *gomock.Controller) (aggregators.StatsService, *statsServiceMocks) {
	m := &statsServiceMocks{
		siteStore:    storemocks.NewMockSiteStore(ctrl),
		sessionStore: storemocks.NewMockSessionStore(ctrl),
		eventStore:   storemocks.NewMockEventStore(ctrl),
		heatmapStore: storemocks.NewMockHeatmapStore(ctrl),
	}
	service := aggregators.NewStatsService(m.siteStore, m.sessionStore, m.eventStore, m.heatmapStore)
	return service, m
}

func TestSiteStats_AggregatesCounters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newStatsService(ctrl)
	avg := int64(42000)

	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.eventStore.EXPECT().CountEvents(gomock.Any(), "site1").Return(int64(120), nil)
	m.eventStore.EXPECT().CountEventsByType(gomock.Any(), "site1").Return(map[string]int64{"click": 80, "pageview": 40}, nil)
	m.sessionStore.EXPECT().CountSessions(gomock.Any(), "site1").Return(int64(10), nil)
	m.sessionStore.EXPECT().CountSessionsByStatus(gomock.Any(), "site1", models.SessionActive).Return(int64(3), nil)
	m.sessionStore.EXPECT().CountSessionsByStatus(gomock.Any(), "site1", models.SessionEnded).Return(int64(7), nil)
	m.heatmapStore.EXPECT().CountPoints(gomock.Any(), "site1").Return(int64(250), nil)
	m.sessionStore.EXPECT().AvgEndedSessionDurationMs(gomock.Any(), "site1").Return(&avg, nil)

	stats, err := service.SiteStats(context.Background(), "site1", "user1")

	require.NoError(t, err)
	assert.Equal(t, "site1", stats.SiteID)
	assert.Equal(t, int64(120), stats.TotalEvents)
	assert.Equal(t, int64(10), stats.TotalSessions)
	assert.Equal(t, int64(3), stats.ActiveSessions)
	assert.Equal(t, int64(7), stats.EndedSessions)
	assert.Equal(t, int64(250), stats.HeatmapPoints)
	require.NotNil(t, stats.AvgSessionDurationMs)
	assert.Equal(t, int64(42000), *stats.AvgSessionDurationMs)
	assert.Equal(t, map[string]int64{"click": 80, "pageview": 40}, stats.EventsByType)
}

func TestSiteStats_NoEndedSessions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newStatsService(ctrl)

	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.eventStore.EXPECT().CountEvents(gomock.Any(), "site1").Return(int64(0), nil)
	m.eventStore.EXPECT().CountEventsByType(gomock.Any(), "site1").Return(map[string]int64{}, nil)
	m.sessionStore.EXPECT().CountSessions(gomock.Any(), "site1").Return(int64(0), nil)
	m.sessionStore.EXPECT().CountSessionsByStatus(gomock.Any(), "site1", models.SessionActive).Return(int64(0), nil)
	m.sessionStore.EXPECT().CountSessionsByStatus(gomock.Any(), "site1", models.SessionEnded).Return(int64(0), nil)
	m.heatmapStore.EXPECT().CountPoints(gomock.Any(), "site1").Return(int64(0), nil)
	m.sessionStore.EXPECT().AvgEndedSessionDurationMs(gomock.Any(), "site1").Return(nil, nil)

	stats, err := service.SiteStats(context.Background(), "site1", "user1")

	require.NoError(t, err)
	assert.Nil(t, stats.AvgSessionDurationMs, "average is absent, not zero, without ended sessions")
}

func TestSiteStats_ErrMissingSiteID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newStatsService(ctrl)

	stats, err := service.SiteStats(context.Background(), "", "user1")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1000", svcErr.Code)
	assert.Nil(t, stats)
}

func TestSiteStats_ErrSiteNotOwned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newStatsService(ctrl)
	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "intruder").Return(nil, stores.ErrSiteNotFound)

	stats, err := service.SiteStats(context.Background(), "site1", "intruder")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1001", svcErr.Code)
	assert.Nil(t, stats, "no counters leak across tenants")
}

func TestSiteStats_ErrStoreFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newStatsService(ctrl)
	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.eventStore.EXPECT().CountEvents(gomock.Any(), "site1").Return(int64(0), assert.AnError)

	stats, err := service.SiteStats(context.Background(), "site1", "user1")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_9000", svcErr.Code)
	assert.Equal(t, 500, svcErr.HttpStatusCode)
	assert.Nil(t, stats)
}
