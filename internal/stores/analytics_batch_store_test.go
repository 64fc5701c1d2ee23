package stores

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"behavior-analytics/internal/models"
)

func sampleBatch(now time.Time) *models.AnalyticsBatch {
	return &models.AnalyticsBatch{
		Sessions: []*models.SessionState{
			{
				SiteID: "site1", SessionID: "sess1", VisitorID: "vis1",
				UserAgent: "Mozilla/5.0", Language: "en-US",
				FirstSeen: now, LastSeen: now, Status: models.SessionActive,
				EventCount: 1,
			},
		},
		Events: []*models.Event{
			{
				SiteID: "site1", SessionID: "sess1", VisitorID: "vis1",
				EventType: "click", Timestamp: now,
				PageURL: "https://example.com/",
				Data:    map[string]any{"element": map[string]any{"tag": "A"}},
				CreatedAt: now,
			},
			{
				SiteID: "site1", SessionID: "sess1", VisitorID: "vis1",
				EventType: "pageview", Timestamp: now,
				PageURL:   "https://example.com/",
				CreatedAt: now,
			},
		},
		Points: []*models.HeatmapPoint{
			{SiteID: "site1", SessionID: "sess1", PageURL: "https://example.com/", X: 12, Y: 7, Count: 1, CreatedAt: now},
		},
	}
}

func TestWriteBatch_CommitsAllGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_state").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO events").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO heatmap_points").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := NewAnalyticsBatchStore(db)
	err = store.WriteBatch(context.Background(), sampleBatch(now))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatch_SkipsEmptyGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Only events: no session or point insert is issued.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO events").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := NewAnalyticsBatchStore(db)
	err = store.WriteBatch(context.Background(), &models.AnalyticsBatch{
		Events: []*models.Event{
			{SiteID: "site1", SessionID: "sess1", EventType: "click", Timestamp: now, CreatedAt: now},
		},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatch_EmptyBatchTouchesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewAnalyticsBatchStore(db)

	require.NoError(t, store.WriteBatch(context.Background(), &models.AnalyticsBatch{}))
	require.NoError(t, store.WriteBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatch_RollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_state").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO events").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewAnalyticsBatchStore(db)
	err = store.WriteBatch(context.Background(), sampleBatch(now))

	require.Error(t, err, "a failed group write fails the whole batch")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteBatch_CommitFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_state").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO events").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO heatmap_points").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)

	store := NewAnalyticsBatchStore(db)
	err = store.WriteBatch(context.Background(), sampleBatch(now))

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMultiRowPlaceholders(t *testing.T) {
	assert.Equal(t, "($1,$2,$3)", multiRowPlaceholders(1, 3))
	assert.Equal(t, "($1,$2),($3,$4)", multiRowPlaceholders(2, 2))
}

func TestMarshalEventData(t *testing.T) {
	empty, err := marshalEventData(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), empty, "absent payloads are stored as an empty object")

	payload, err := marshalEventData(map[string]any{"depth": 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"depth":42}`, string(payload))
}
