package stores

import (
	"context"
	"database/sql"
	"fmt"

	"behavior-analytics/internal/models"
)

// queryListHeatmapPoints returns raw points for one session; the page_url
// parameter is empty for "all pages".
const queryListHeatmapPoints = `
	SELECT site_id, session_id, page_url, x, y, count, created_at
	FROM heatmap_points
	WHERE site_id = $1 AND session_id = $2
	  AND ($3 = '' OR page_url = $3)
`

const queryCountHeatmapPoints = `
	SELECT COUNT(*) FROM heatmap_points WHERE site_id = $1
`

const queryCountSessionHeatmapPoints = `
	SELECT COUNT(*) FROM heatmap_points
	WHERE site_id = $1 AND session_id = $2
`

//go:generate mockgen -source=heatmap_store.go -destination=./mocks/heatmap_store_mock.go -package=mocks
type HeatmapStore interface {
	// ListPoints returns all raw points for one session, optionally
	// filtered by page URL. Bucketing happens at read time, not here.
	ListPoints(ctx context.Context, siteID, sessionID, pageURL string) ([]*models.HeatmapPoint, error)
	CountPoints(ctx context.Context, siteID string) (int64, error)
	CountSessionPoints(ctx context.Context, siteID, sessionID string) (int64, error)
}

type heatmapStore struct {
	db *sql.DB
}

func NewHeatmapStore(db *sql.DB) HeatmapStore {
	return &heatmapStore{db: db}
}

func (s *heatmapStore) ListPoints(ctx context.Context, siteID, sessionID, pageURL string) ([]*models.HeatmapPoint, error) {
	rows, err := s.db.QueryContext(ctx, queryListHeatmapPoints, siteID, sessionID, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list heatmap points: %w", err)
	}
	defer rows.Close()

	var points []*models.HeatmapPoint
	for rows.Next() {
		var p models.HeatmapPoint
		if err := rows.Scan(&p.SiteID, &p.SessionID, &p.PageURL, &p.X, &p.Y, &p.Count, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap point: %w", err)
		}
		points = append(points, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating heatmap points: %w", err)
	}
	return points, nil
}

func (s *heatmapStore) CountPoints(ctx context.Context, siteID string) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, queryCountHeatmapPoints, siteID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count heatmap points: %w", err)
	}
	return count, nil
}

func (s *heatmapStore) CountSessionPoints(ctx context.Context, siteID, sessionID string) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, queryCountSessionHeatmapPoints, siteID, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count session heatmap points: %w", err)
	}
	return count, nil
}
