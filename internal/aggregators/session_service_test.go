package aggregators_test

import (
	"context"
	"testing"
	"time"

	"behavior-analytics/internal/aggregators"
	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/svcerrors"
	"behavior-analytics/internal/stores"
	storemocks "behavior-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chromeOnMacUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type sessionServiceMocks struct {
	siteStore    *storemocks.MockSiteStore
	sessionStore *storemocks.MockSessionStore
	eventStore   *storemocks.MockEventStore
	heatmapStore *storemocks.MockHeatmapStore
}

func newSessionService(ctrl *gomock.Controller) (aggregators.SessionService, *sessionServiceMocks) {
	m := &sessionServiceMocks{
		siteStore:    storemocks.NewMockSiteStore(ctrl),
		sessionStore: storemocks.NewMockSessionStore(ctrl),
		eventStore:   storemocks.NewMockEventStore(ctrl),
		heatmapStore: storemocks.NewMockHeatmapStore(ctrl),
	}
	service := aggregators.NewSessionService(m.siteStore, m.sessionStore, m.eventStore, m.heatmapStore, 50)
	return service, m
}

func TestListSessions_DerivesClientFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSessionService(ctrl)
	firstSeen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.sessionStore.EXPECT().ListSessions(gomock.Any(), "site1", models.SessionStatus(""), 50).Return([]*models.SessionState{
		{
			SiteID:     "site1",
			SessionID:  "sess1",
			VisitorID:  "vis1",
			UserAgent:  chromeOnMacUA,
			FirstSeen:  firstSeen,
			LastSeen:   firstSeen.Add(time.Minute),
			Status:     models.SessionActive,
			EventCount: 5,
		},
	}, nil)

	list, err := service.ListSessions(context.Background(), "site1", "user1", "", 0)

	require.NoError(t, err)
	assert.Equal(t, "site1", list.SiteID)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, "sess1", list.Sessions[0].SessionID)
	assert.Equal(t, "Chrome", list.Sessions[0].Browser)
	assert.Equal(t, "macOS", list.Sessions[0].OS)
	assert.Equal(t, models.SessionActive, list.Sessions[0].Status)
}

func TestListSessions_StatusFilterForwarded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSessionService(ctrl)
	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.sessionStore.EXPECT().ListSessions(gomock.Any(), "site1", models.SessionEnded, 10).Return(nil, nil)

	list, err := service.ListSessions(context.Background(), "site1", "user1", models.SessionEnded, 10)

	require.NoError(t, err)
	assert.Empty(t, list.Sessions)
}

func TestListSessions_ErrInvalidStatusFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newSessionService(ctrl)

	list, err := service.ListSessions(context.Background(), "site1", "user1", "paused", 0)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1002", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
	assert.Nil(t, list)
}

func TestListSessions_ErrSiteNotOwned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSessionService(ctrl)
	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "intruder").Return(nil, stores.ErrSiteNotFound)

	list, err := service.ListSessions(context.Background(), "site1", "intruder", "", 0)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1001", svcErr.Code)
	assert.Nil(t, list)
}

func TestSessionDetail_AssemblesFullView(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSessionService(ctrl)
	firstSeen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.sessionStore.EXPECT().GetSession(gomock.Any(), "site1", "sess1").Return(&models.SessionState{
		SiteID:           "site1",
		SessionID:        "sess1",
		VisitorID:        "vis1",
		UserAgent:        chromeOnMacUA,
		Language:         "en-US",
		Platform:         "MacIntel",
		ScreenResolution: "2560x1440",
		FirstSeen:        firstSeen,
		LastSeen:         firstSeen.Add(time.Minute),
		Status:           models.SessionEnded,
		DurationMs:       60000,
	}, nil)
	m.eventStore.EXPECT().ListSessionEvents(gomock.Any(), "site1", "sess1").Return([]*models.TimelineEvent{
		{Type: "pageview", Timestamp: firstSeen, PageURL: "https://example.com/"},
		{Type: "click", Timestamp: firstSeen.Add(10 * time.Second), PageURL: "https://example.com/", Data: map[string]any{"element": map[string]any{"tag": "A"}}},
	}, nil)
	m.eventStore.EXPECT().CountSessionEventsByType(gomock.Any(), "site1", "sess1").Return(map[string]int64{"pageview": 1, "click": 1}, nil)
	m.eventStore.EXPECT().ListSessionPages(gomock.Any(), "site1", "sess1").Return([]string{"https://example.com/"}, nil)
	m.heatmapStore.EXPECT().CountSessionPoints(gomock.Any(), "site1", "sess1").Return(int64(4), nil)

	detail, err := service.SessionDetail(context.Background(), "site1", "user1", "sess1")

	require.NoError(t, err)
	assert.Equal(t, "sess1", detail.SessionID)
	assert.Equal(t, "Chrome", detail.Browser)
	assert.Equal(t, "macOS", detail.OS)
	assert.Equal(t, models.SessionEnded, detail.Status)
	assert.Equal(t, int64(2), detail.TotalEvents)
	assert.Equal(t, int64(4), detail.HeatmapPoints)
	assert.Equal(t, []string{"https://example.com/"}, detail.PagesVisited)
	require.Len(t, detail.Events, 2)
	assert.Equal(t, "pageview", detail.Events[0].Type, "timeline stays in event-time order")
}

func TestSessionDetail_ErrSessionNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSessionService(ctrl)
	m.siteStore.EXPECT().ResolveOwnedSite(gomock.Any(), "site1", "user1").Return(&models.Site{SiteID: "site1"}, nil)
	m.sessionStore.EXPECT().GetSession(gomock.Any(), "site1", "ghost").Return(nil, stores.ErrSessionNotFound)

	detail, err := service.SessionDetail(context.Background(), "site1", "user1", "ghost")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1003", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
	assert.Nil(t, detail)
}
