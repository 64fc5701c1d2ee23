package models

import "time"

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

func (s SessionStatus) IsValid() bool {
	return s == SessionActive || s == SessionEnded
}

// SessionState is the latest known summary of one (site_id, session_id)
// pair. It is mutable-in-effect but physically append-only: writers append
// a new row with the same key and a higher last_seen version, and every
// read resolves to the highest-version row per key. The ingestion path
// only ever writes the creation-time row; duration, engagement and scroll
// depth are placeholders until a finalization pass supersedes them.
type SessionState struct {
	SiteID    string
	SessionID string
	VisitorID string

	// Captured once at session start from the batch's shared client
	// metadata block.
	UserAgent        string
	Language         string
	Platform         string
	ScreenResolution string

	FirstSeen time.Time
	LastSeen  time.Time // version field for append-and-supersede
	Status    SessionStatus

	DurationMs       int64
	EngagementTimeMs int64
	FinalScrollDepth int
	EventCount       int64
}
