package models

// AnalyticsBatch groups the classified records of one ingestion request by
// storage destination. Each non-empty group becomes exactly one multi-row
// insert, and all groups commit as a single unit.
type AnalyticsBatch struct {
	Sessions []*SessionState
	Events   []*Event
	Points   []*HeatmapPoint
}

func (b *AnalyticsBatch) IsEmpty() bool {
	return len(b.Sessions) == 0 && len(b.Events) == 0 && len(b.Points) == 0
}
