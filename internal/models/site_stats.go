package models

import "time"

// SiteStats is the per-tenant aggregate statistics view. Averages are nil
// when no ended session exists yet.
type SiteStats struct {
	SiteID               string           `json:"site_id"`
	TotalEvents          int64            `json:"total_events"`
	TotalSessions        int64            `json:"total_sessions"`
	ActiveSessions       int64            `json:"active_sessions"`
	EndedSessions        int64            `json:"ended_sessions"`
	HeatmapPoints        int64            `json:"heatmap_points"`
	AvgSessionDurationMs *int64           `json:"avg_session_duration_ms"`
	EventsByType         map[string]int64 `json:"events_by_type"`
}

// SessionSummary is one row of a session listing. Browser and OS are
// derived from the stored user agent at read time.
type SessionSummary struct {
	SessionID        string        `json:"session_id"`
	VisitorID        string        `json:"visitor_id"`
	FirstSeen        time.Time     `json:"first_seen"`
	LastSeen         time.Time     `json:"last_seen"`
	UserAgent        string        `json:"user_agent"`
	Browser          string        `json:"browser,omitempty"`
	OS               string        `json:"os,omitempty"`
	Status           SessionStatus `json:"status"`
	DurationMs       int64         `json:"duration_ms"`
	EngagementTimeMs int64         `json:"engagement_time_ms"`
	EventCount       int64         `json:"event_count"`
}

// SessionList is the listing response for one site.
type SessionList struct {
	SiteID   string            `json:"site_id"`
	Sessions []*SessionSummary `json:"sessions"`
}

// TimelineEvent is one entry of a session's ordered event timeline.
type TimelineEvent struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	PageURL   string         `json:"page_url"`
	Data      map[string]any `json:"data,omitempty"`
}

// SessionDetail is the full read view of one session: latest state,
// derived client fields, and the ordered event timeline.
type SessionDetail struct {
	SessionID        string           `json:"session_id"`
	SiteID           string           `json:"site_id"`
	VisitorID        string           `json:"visitor_id"`
	UserAgent        string           `json:"user_agent"`
	Browser          string           `json:"browser,omitempty"`
	OS               string           `json:"os,omitempty"`
	Language         string           `json:"language"`
	Platform         string           `json:"platform"`
	ScreenResolution string           `json:"screen_resolution"`
	FirstSeen        time.Time        `json:"first_seen"`
	LastSeen         time.Time        `json:"last_seen"`
	Status           SessionStatus    `json:"status"`
	DurationMs       int64            `json:"duration_ms"`
	EngagementTimeMs int64            `json:"engagement_time_ms"`
	FinalScrollDepth int              `json:"final_scroll_depth"`
	TotalEvents      int64            `json:"total_events"`
	HeatmapPoints    int64            `json:"heatmap_points"`
	EventsByType     map[string]int64 `json:"events_by_type"`
	PagesVisited     []string         `json:"pages_visited"`
	Events           []*TimelineEvent `json:"events"`
}
