package ingestors

import "behavior-analytics/internal/models"

// BatchAccumulator collects the classified records of one ingestion
// request into per-destination groups so that each destination gets
// exactly one multi-row write. One accumulator lives for the duration of
// one request; there is no cross-request batching.
type BatchAccumulator struct {
	batch models.AnalyticsBatch
}

func NewBatchAccumulator() *BatchAccumulator {
	return &BatchAccumulator{}
}

func (a *BatchAccumulator) AddSession(sess *models.SessionState) {
	a.batch.Sessions = append(a.batch.Sessions, sess)
}

func (a *BatchAccumulator) AddEvent(evt *models.Event) {
	a.batch.Events = append(a.batch.Events, evt)
}

func (a *BatchAccumulator) AddPoint(point *models.HeatmapPoint) {
	a.batch.Points = append(a.batch.Points, point)
}

func (a *BatchAccumulator) Batch() *models.AnalyticsBatch {
	return &a.batch
}
