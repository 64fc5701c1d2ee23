package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"behavior-analytics/internal/models"
)

const (
	sessionInsertCols = 15
	eventInsertCols   = 13
	pointInsertCols   = 7
)

const insertSessionStatePrefix = `
	INSERT INTO session_state (
		site_id, session_id, visitor_id,
		user_agent, language, platform, screen_resolution,
		first_seen, last_seen, status,
		duration_ms, engagement_time_ms, final_scroll_depth, event_count,
		created_at
	) VALUES `

const insertEventsPrefix = `
	INSERT INTO events (
		site_id, session_id, visitor_id, event_type, ts,
		page_url, page_path, page_title, page_referrer,
		viewport_width, viewport_height, event_data,
		created_at
	) VALUES `

const insertHeatmapPointsPrefix = `
	INSERT INTO heatmap_points (
		site_id, session_id, page_url, x, y, count, created_at
	) VALUES `

// AnalyticsBatchStore persists the destination groups of one ingestion
// request. All tables are append-only: WriteBatch only ever inserts.
//
//go:generate mockgen -source=analytics_batch_store.go -destination=./mocks/analytics_batch_store_mock.go -package=mocks
type AnalyticsBatchStore interface {
	// WriteBatch issues one multi-row insert per non-empty group and
	// commits them as a single transaction. On any failure the whole
	// batch is rolled back and nothing is durable.
	WriteBatch(ctx context.Context, batch *models.AnalyticsBatch) error
}

type analyticsBatchStore struct {
	db *sql.DB
}

func NewAnalyticsBatchStore(db *sql.DB) AnalyticsBatchStore {
	return &analyticsBatchStore{db: db}
}

func (s *analyticsBatchStore) WriteBatch(ctx context.Context, batch *models.AnalyticsBatch) error {
	if batch == nil || batch.IsEmpty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(batch.Sessions) > 0 {
		if err := s.insertSessions(ctx, tx, batch.Sessions); err != nil {
			return err
		}
	}
	if len(batch.Events) > 0 {
		if err := s.insertEvents(ctx, tx, batch.Events); err != nil {
			return err
		}
	}
	if len(batch.Points) > 0 {
		if err := s.insertPoints(ctx, tx, batch.Points); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (s *analyticsBatchStore) insertSessions(ctx context.Context, tx *sql.Tx, sessions []*models.SessionState) error {
	query := insertSessionStatePrefix + multiRowPlaceholders(len(sessions), sessionInsertCols)
	args := make([]any, 0, len(sessions)*sessionInsertCols)
	for _, sess := range sessions {
		args = append(args,
			sess.SiteID, sess.SessionID, sess.VisitorID,
			sess.UserAgent, sess.Language, sess.Platform, sess.ScreenResolution,
			sess.FirstSeen, sess.LastSeen, string(sess.Status),
			sess.DurationMs, sess.EngagementTimeMs, sess.FinalScrollDepth, sess.EventCount,
			sess.FirstSeen,
		)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert session states: %w", err)
	}
	return nil
}

func (s *analyticsBatchStore) insertEvents(ctx context.Context, tx *sql.Tx, events []*models.Event) error {
	query := insertEventsPrefix + multiRowPlaceholders(len(events), eventInsertCols)
	args := make([]any, 0, len(events)*eventInsertCols)
	for _, evt := range events {
		eventData, err := marshalEventData(evt.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal event data: %w", err)
		}
		args = append(args,
			evt.SiteID, evt.SessionID, evt.VisitorID, evt.EventType, evt.Timestamp,
			evt.PageURL, evt.PagePath, evt.PageTitle, evt.PageReferrer,
			evt.ViewportWidth, evt.ViewportHeight, eventData,
			evt.CreatedAt,
		)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert events: %w", err)
	}
	return nil
}

func (s *analyticsBatchStore) insertPoints(ctx context.Context, tx *sql.Tx, points []*models.HeatmapPoint) error {
	query := insertHeatmapPointsPrefix + multiRowPlaceholders(len(points), pointInsertCols)
	args := make([]any, 0, len(points)*pointInsertCols)
	for _, p := range points {
		args = append(args,
			p.SiteID, p.SessionID, p.PageURL, p.X, p.Y, p.Count, p.CreatedAt,
		)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert heatmap points: %w", err)
	}
	return nil
}

// marshalEventData serializes the type-specific payload as JSONB. A nil
// or empty payload is stored as an empty object.
func marshalEventData(data map[string]any) ([]byte, error) {
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(data)
}
