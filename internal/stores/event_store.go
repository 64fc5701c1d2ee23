package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"behavior-analytics/internal/models"
)

const queryCountEvents = `
	SELECT COUNT(*) FROM events WHERE site_id = $1
`

const queryCountEventsByType = `
	SELECT event_type, COUNT(*) FROM events
	WHERE site_id = $1
	GROUP BY event_type
`

const queryCountSessionEventsByType = `
	SELECT event_type, COUNT(*) FROM events
	WHERE site_id = $1 AND session_id = $2
	GROUP BY event_type
`

// queryListSessionEvents returns a session's timeline in event-time order.
const queryListSessionEvents = `
	SELECT event_type, ts, page_url, event_data
	FROM events
	WHERE site_id = $1 AND session_id = $2
	ORDER BY ts ASC
`

const queryListSessionPages = `
	SELECT DISTINCT page_url FROM events
	WHERE site_id = $1 AND session_id = $2
`

// EventStore reads the append-only events table. It never joins against
// session state: an event may legitimately reference a session whose
// state row is not yet visible.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	CountEvents(ctx context.Context, siteID string) (int64, error)
	CountEventsByType(ctx context.Context, siteID string) (map[string]int64, error)
	CountSessionEventsByType(ctx context.Context, siteID, sessionID string) (map[string]int64, error)
	// ListSessionEvents returns the ordered event timeline of one session.
	ListSessionEvents(ctx context.Context, siteID, sessionID string) ([]*models.TimelineEvent, error)
	ListSessionPages(ctx context.Context, siteID, sessionID string) ([]string, error)
}

type eventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) EventStore {
	return &eventStore{db: db}
}

func (s *eventStore) CountEvents(ctx context.Context, siteID string) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, queryCountEvents, siteID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (s *eventStore) CountEventsByType(ctx context.Context, siteID string) (map[string]int64, error) {
	return s.scanTypeCounts(ctx, queryCountEventsByType, siteID)
}

func (s *eventStore) CountSessionEventsByType(ctx context.Context, siteID, sessionID string) (map[string]int64, error) {
	return s.scanTypeCounts(ctx, queryCountSessionEventsByType, siteID, sessionID)
}

func (s *eventStore) scanTypeCounts(ctx context.Context, query string, args ...any) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count events by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var eventType string
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		counts[eventType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type counts: %w", err)
	}
	return counts, nil
}

func (s *eventStore) ListSessionEvents(ctx context.Context, siteID, sessionID string) ([]*models.TimelineEvent, error) {
	rows, err := s.db.QueryContext(ctx, queryListSessionEvents, siteID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session events: %w", err)
	}
	defer rows.Close()

	var events []*models.TimelineEvent
	for rows.Next() {
		var evt models.TimelineEvent
		var rawData []byte
		if err := rows.Scan(&evt.Type, &evt.Timestamp, &evt.PageURL, &rawData); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if len(rawData) > 0 {
			if err := json.Unmarshal(rawData, &evt.Data); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event data: %w", err)
			}
		}
		events = append(events, &evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session events: %w", err)
	}
	return events, nil
}

func (s *eventStore) ListSessionPages(ctx context.Context, siteID, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryListSessionPages, siteID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session pages: %w", err)
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session pages: %w", err)
	}
	return pages, nil
}
