package ingestors

import (
	"strings"
	"time"

	"behavior-analytics/internal/models"
)

// EventClassifier maps one raw event record to its typed storage shape.
// The discriminator space is open: a fixed set of known kinds, the
// prefix-matched custom:<name> kind, and a fallback for everything else.
// The classifier never rejects a record for having an unrecognized type.
//
//go:generate mockgen -source=event_classifier.go -destination=./mocks/event_classifier_mock.go -package=mocks
type EventClassifier interface {
	// Classify builds the generic-Event payload for one raw event, or
	// returns routeHeatmap=true when the record belongs to the heatmap
	// destination instead of the events table.
	Classify(siteID string, raw *models.RawEvent, now time.Time) (event *models.Event, routeHeatmap bool)
}

type eventClassifier struct{}

func NewEventClassifier() EventClassifier {
	return &eventClassifier{}
}

func (c *eventClassifier) Classify(siteID string, raw *models.RawEvent, now time.Time) (*models.Event, bool) {
	if raw.Type == models.EventTypeMousemove {
		return nil, true
	}

	return &models.Event{
		SiteID:         siteID,
		SessionID:      raw.SessionID,
		VisitorID:      raw.VisitorID,
		EventType:      raw.Type,
		Timestamp:      raw.OccurredAt(),
		PageURL:        raw.Page.URL,
		PagePath:       raw.Page.Path,
		PageTitle:      raw.Page.Title,
		PageReferrer:   raw.Page.Referrer,
		ViewportWidth:  raw.Viewport.Width,
		ViewportHeight: raw.Viewport.Height,
		Data:           c.eventData(raw),
		CreatedAt:      now,
	}, false
}

// eventData extracts the type-specific field subset. Fields absent from
// the input are omitted, never defaulted; unknown types produce an empty
// payload.
func (c *eventClassifier) eventData(raw *models.RawEvent) map[string]any {
	data := make(map[string]any)

	switch {
	case raw.Type == "click":
		putMap(data, "element", raw.Element)
		putMap(data, "position", raw.Position)
	case raw.Type == "scroll":
		putInt(data, "depth", raw.Depth)
		putMap(data, "position", raw.Position)
	case raw.Type == "form_interaction":
		putString(data, "eventType", raw.EventType)
		putMap(data, "element", raw.Element)
	case raw.Type == "visibility":
		putString(data, "state", raw.State)
		putBool(data, "hidden", raw.Hidden)
	case raw.Type == "error":
		putString(data, "message", raw.Message)
		putString(data, "source", raw.Source)
		putInt(data, "line", raw.Line)
		putInt(data, "column", raw.Column)
		putString(data, "stack", raw.Stack)
	case raw.Type == "page_exit":
		putInt64(data, "timeOnPage", raw.TimeOnPage)
		putInt64(data, "engagementTime", raw.EngagementTime)
		putInt(data, "scrollDepth", raw.ScrollDepth)
	case raw.Type == "identify":
		putString(data, "userId", raw.UserID)
		putMap(data, "traits", raw.Traits)
	case raw.Type == "pageview":
		putBool(data, "isNewVisitor", raw.IsNewVisitor)
		putInt(data, "pageViewNumber", raw.PageViewNumber)
	case strings.HasPrefix(raw.Type, models.CustomEventPrefix):
		data["eventName"] = strings.TrimPrefix(raw.Type, models.CustomEventPrefix)
		putMap(data, "custom", raw.Custom)
	}

	return data
}

func putMap(data map[string]any, key string, v map[string]any) {
	if v != nil {
		data[key] = v
	}
}

func putString(data map[string]any, key string, v *string) {
	if v != nil {
		data[key] = *v
	}
}

func putInt(data map[string]any, key string, v *int) {
	if v != nil {
		data[key] = *v
	}
}

func putInt64(data map[string]any, key string, v *int64) {
	if v != nil {
		data[key] = *v
	}
}

func putBool(data map[string]any, key string, v *bool) {
	if v != nil {
		data[key] = *v
	}
}
