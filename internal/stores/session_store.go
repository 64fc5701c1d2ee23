package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"behavior-analytics/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// session_state is append-only versioned; reads resolve to the
// deduplicated latest view (highest last_seen per (site_id, session_id)),
// never to individual physical rows.

// querySessionExists probes the raw rows directly: any row for the key
// means the session exists, so the dedup subquery is unnecessary here.
const querySessionExists = `
	SELECT EXISTS (
		SELECT 1 FROM session_state
		WHERE site_id = $1 AND session_id = $2
	)
`

const sessionLatestColumns = `
	site_id, session_id, visitor_id,
	user_agent, language, platform, screen_resolution,
	first_seen, last_seen, status,
	duration_ms, engagement_time_ms, final_scroll_depth, event_count
`

const querySessionLatest = `
	SELECT DISTINCT ON (site_id, session_id)` + sessionLatestColumns + `
	FROM session_state
	WHERE site_id = $1 AND session_id = $2
	ORDER BY site_id, session_id, last_seen DESC
`

// querySessionList lists latest session versions for one site ordered by
// recency. The status parameter is empty for "all".
const querySessionList = `
	SELECT * FROM (
		SELECT DISTINCT ON (site_id, session_id)` + sessionLatestColumns + `
		FROM session_state
		WHERE site_id = $1
		ORDER BY site_id, session_id, last_seen DESC
	) latest
	WHERE ($2 = '' OR status = $2)
	ORDER BY last_seen DESC
	LIMIT $3
`

const querySessionCount = `
	SELECT COUNT(*) FROM (
		SELECT DISTINCT ON (site_id, session_id) session_id
		FROM session_state
		WHERE site_id = $1
		ORDER BY site_id, session_id, last_seen DESC
	) latest
`

const querySessionCountByStatus = `
	SELECT COUNT(*) FROM (
		SELECT DISTINCT ON (site_id, session_id) status
		FROM session_state
		WHERE site_id = $1
		ORDER BY site_id, session_id, last_seen DESC
	) latest
	WHERE status = $2
`

const queryAvgEndedSessionDuration = `
	SELECT AVG(duration_ms) FROM (
		SELECT DISTINCT ON (site_id, session_id) status, duration_ms
		FROM session_state
		WHERE site_id = $1
		ORDER BY site_id, session_id, last_seen DESC
	) latest
	WHERE status = 'ended'
`

//go:generate mockgen -source=session_store.go -destination=./mocks/session_store_mock.go -package=mocks
type SessionStore interface {
	// SessionExists performs the point lookup the session deriver uses to
	// decide whether a creation row must be staged.
	SessionExists(ctx context.Context, siteID, sessionID string) (bool, error)
	// GetSession returns the latest state of one session, or
	// ErrSessionNotFound.
	GetSession(ctx context.Context, siteID, sessionID string) (*models.SessionState, error)
	// ListSessions returns latest session versions ordered by last_seen
	// descending. status filters when non-empty.
	ListSessions(ctx context.Context, siteID string, status models.SessionStatus, limit int) ([]*models.SessionState, error)
	CountSessions(ctx context.Context, siteID string) (int64, error)
	CountSessionsByStatus(ctx context.Context, siteID string, status models.SessionStatus) (int64, error)
	// AvgEndedSessionDurationMs returns nil when the site has no ended
	// sessions yet.
	AvgEndedSessionDurationMs(ctx context.Context, siteID string) (*int64, error)
}

type sessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) SessionStore {
	return &sessionStore{db: db}
}

func (s *sessionStore) SessionExists(ctx context.Context, siteID, sessionID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, querySessionExists, siteID, sessionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}
	return exists, nil
}

func (s *sessionStore) GetSession(ctx context.Context, siteID, sessionID string) (*models.SessionState, error) {
	row := s.db.QueryRowContext(ctx, querySessionLatest, siteID, sessionID)

	sess, err := scanSessionState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

func (s *sessionStore) ListSessions(ctx context.Context, siteID string, status models.SessionStatus, limit int) ([]*models.SessionState, error) {
	rows, err := s.db.QueryContext(ctx, querySessionList, siteID, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.SessionState
	for rows.Next() {
		sess, err := scanSessionState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionStore) CountSessions(ctx context.Context, siteID string) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, querySessionCount, siteID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (s *sessionStore) CountSessionsByStatus(ctx context.Context, siteID string, status models.SessionStatus) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, querySessionCountByStatus, siteID, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions by status: %w", err)
	}
	return count, nil
}

func (s *sessionStore) AvgEndedSessionDurationMs(ctx context.Context, siteID string) (*int64, error) {
	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, queryAvgEndedSessionDuration, siteID).Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to average session duration: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	ms := int64(avg.Float64)
	return &ms, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionState(row rowScanner) (*models.SessionState, error) {
	var sess models.SessionState
	var status string
	err := row.Scan(
		&sess.SiteID, &sess.SessionID, &sess.VisitorID,
		&sess.UserAgent, &sess.Language, &sess.Platform, &sess.ScreenResolution,
		&sess.FirstSeen, &sess.LastSeen, &status,
		&sess.DurationMs, &sess.EngagementTimeMs, &sess.FinalScrollDepth, &sess.EventCount,
	)
	if err != nil {
		return nil, err
	}
	sess.Status = models.SessionStatus(status)
	return &sess, nil
}
