package models

import "time"

// HeatmapPoint is one raw mouse-position sample. Count is always 1 at
// write time; aggregation into buckets happens at read time only.
type HeatmapPoint struct {
	SiteID    string
	SessionID string
	PageURL   string
	X         int
	Y         int
	Count     int64
	CreatedAt time.Time
}

// HeatmapBucket is one fixed-size grid cell with the summed count of all
// points that fall into it. X and Y are the bucket origin (coordinates
// integer-divided by the bucket size and floored back).
type HeatmapBucket struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Count int64 `json:"count"`
}

// HeatmapSummary is the read-time bucketed view of a session's mouse
// samples. Bucket order is not guaranteed.
type HeatmapSummary struct {
	SiteID      string          `json:"site_id"`
	SessionID   string          `json:"session_id"`
	PageURL     string          `json:"page_url,omitempty"`
	TotalPoints int64           `json:"total_points"`
	Heatmap     []HeatmapBucket `json:"heatmap"`
}
