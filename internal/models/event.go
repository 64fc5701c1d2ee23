package models

import "time"

// EventTypeMousemove is the one event kind that never produces an Event
// row; sampled-in occurrences are routed to the heatmap destination.
const EventTypeMousemove = "mousemove"

// CustomEventPrefix marks the dynamic, prefix-matched event kind
// (custom:<name>).
const CustomEventPrefix = "custom:"

// Event is one immutable recorded user-interaction fact. Rows are
// append-only: once written they are never mutated or deleted.
type Event struct {
	SiteID    string
	SessionID string
	VisitorID string
	EventType string
	Timestamp time.Time

	PageURL      string
	PagePath     string
	PageTitle    string
	PageReferrer string

	ViewportWidth  int
	ViewportHeight int

	// Data holds the type-specific payload. Keys absent from the input
	// are omitted, never defaulted.
	Data map[string]any

	CreatedAt time.Time
}
