package models

import "time"

// CollectPayload is the body of one ingestion request sent by the tracking
// script: a batch of events plus one client-metadata block shared by every
// event in the batch. The site ID may arrive here or via the X-Site-ID
// header; the header wins when both are present.
type CollectPayload struct {
	SiteID string      `json:"site_id"`
	Events []*RawEvent `json:"events"`
	Meta   ClientMeta  `json:"meta"`
}

// ClientMeta is captured once per request and assumed constant for all
// events in that request.
type ClientMeta struct {
	UserAgent        string `json:"userAgent"`
	Language         string `json:"language"`
	Platform         string `json:"platform"`
	ScreenResolution string `json:"screenResolution"`
}

// PageContext describes the page an event occurred on.
type PageContext struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Title    string `json:"title"`
	Referrer string `json:"referrer"`
}

// Viewport holds the client viewport dimensions at event time.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RawEvent is one record of the semi-structured event stream. Type is an
// open discriminator; the optional fields below are populated depending on
// it. Unrecognized extra fields in the JSON are ignored, not rejected.
type RawEvent struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"` // client epoch milliseconds
	SessionID string      `json:"sessionId"`
	VisitorID string      `json:"visitorId"`
	Page      PageContext `json:"page"`
	Viewport  Viewport    `json:"viewport"`

	// click / mousemove / scroll
	Element  map[string]any `json:"element,omitempty"`
	Position map[string]any `json:"position,omitempty"`
	Depth    *int           `json:"depth,omitempty"`

	// form_interaction
	EventType *string `json:"eventType,omitempty"`

	// visibility
	State  *string `json:"state,omitempty"`
	Hidden *bool   `json:"hidden,omitempty"`

	// error
	Message *string `json:"message,omitempty"`
	Source  *string `json:"source,omitempty"`
	Line    *int    `json:"line,omitempty"`
	Column  *int    `json:"column,omitempty"`
	Stack   *string `json:"stack,omitempty"`

	// page_exit
	TimeOnPage     *int64 `json:"timeOnPage,omitempty"`
	EngagementTime *int64 `json:"engagementTime,omitempty"`
	ScrollDepth    *int   `json:"scrollDepth,omitempty"`

	// identify
	UserID *string        `json:"userId,omitempty"`
	Traits map[string]any `json:"traits,omitempty"`

	// pageview
	IsNewVisitor   *bool `json:"isNewVisitor,omitempty"`
	PageViewNumber *int  `json:"pageViewNumber,omitempty"`

	// custom:<name>
	Custom map[string]any `json:"custom,omitempty"`
}

// OccurredAt converts the client-supplied epoch-millisecond timestamp to
// absolute UTC time.
func (e *RawEvent) OccurredAt() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}
