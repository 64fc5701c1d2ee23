package ingestors

import (
	"context"
	"time"

	"behavior-analytics/internal/models"
	"behavior-analytics/internal/stores"
)

// SessionDeriver decides, once per distinct session in one request,
// whether a SessionState creation row must be staged. One deriver lives
// for the duration of one request.
//
// The ingestion path only ever writes the creation-time row: when a
// session already exists, nothing is staged and no fields are merged.
// Duration, engagement and scroll depth stay at their creation-time
// values until a separate finalization pass supersedes the row.
type SessionDeriver struct {
	sessionStore stores.SessionStore
	seen         map[string]struct{}
}

func NewSessionDeriver(sessionStore stores.SessionStore) *SessionDeriver {
	return &SessionDeriver{
		sessionStore: sessionStore,
		seen:         make(map[string]struct{}),
	}
}

// StageIfNew returns the SessionState row to stage for this event's
// session, or nil when the session already exists or was already handled
// earlier in this request. The point lookup against the deduplicated
// session view happens at most once per distinct session per request.
func (d *SessionDeriver) StageIfNew(ctx context.Context, siteID string, raw *models.RawEvent, meta *models.ClientMeta, now time.Time) (*models.SessionState, error) {
	if _, ok := d.seen[raw.SessionID]; ok {
		return nil, nil
	}
	d.seen[raw.SessionID] = struct{}{}

	exists, err := d.sessionStore.SessionExists(ctx, siteID, raw.SessionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	return &models.SessionState{
		SiteID:           siteID,
		SessionID:        raw.SessionID,
		VisitorID:        raw.VisitorID,
		UserAgent:        meta.UserAgent,
		Language:         meta.Language,
		Platform:         meta.Platform,
		ScreenResolution: meta.ScreenResolution,
		FirstSeen:        now,
		LastSeen:         now,
		Status:           models.SessionActive,
		EventCount:       1,
	}, nil
}
