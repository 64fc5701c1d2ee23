package ingestors_test

import (
	"testing"
	"time"

	"behavior-analytics/internal/ingestors"
	"behavior-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_MousemoveRoutesToHeatmap(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()

	evt, routeHeatmap := classifier.Classify("site1", &models.RawEvent{
		Type:      "mousemove",
		Timestamp: 1700000000000,
		SessionID: "sess1",
		VisitorID: "vis1",
		Page:      models.PageContext{URL: "https://example.com/"},
		Position:  map[string]any{"x": float64(12), "y": float64(7)},
	}, time.Now().UTC())

	assert.True(t, routeHeatmap)
	assert.Nil(t, evt, "mousemove never produces an event row")
}

func TestClassify_Click(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	evt, routeHeatmap := classifier.Classify("site1", &models.RawEvent{
		Type:      "click",
		Timestamp: 1700000000000,
		SessionID: "sess1",
		VisitorID: "vis1",
		Page: models.PageContext{
			URL:      "https://example.com/pricing",
			Path:     "/pricing",
			Title:    "Pricing",
			Referrer: "https://example.com/",
		},
		Viewport: models.Viewport{Width: 1280, Height: 720},
		Element:  map[string]any{"tag": "BUTTON", "id": "buy"},
		Position: map[string]any{"x": float64(100), "y": float64(200)},
	}, now)

	require.False(t, routeHeatmap)
	require.NotNil(t, evt)
	assert.Equal(t, "site1", evt.SiteID)
	assert.Equal(t, "sess1", evt.SessionID)
	assert.Equal(t, "vis1", evt.VisitorID)
	assert.Equal(t, "click", evt.EventType)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), evt.Timestamp)
	assert.Equal(t, "https://example.com/pricing", evt.PageURL)
	assert.Equal(t, "/pricing", evt.PagePath)
	assert.Equal(t, 1280, evt.ViewportWidth)
	assert.Equal(t, now, evt.CreatedAt)
	assert.Equal(t, map[string]any{
		"element":  map[string]any{"tag": "BUTTON", "id": "buy"},
		"position": map[string]any{"x": float64(100), "y": float64(200)},
	}, evt.Data)
}

func TestClassify_CustomEvent(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()

	evt, routeHeatmap := classifier.Classify("site1", &models.RawEvent{
		Type:      "custom:signup_completed",
		Timestamp: 1700000000000,
		SessionID: "sess1",
		VisitorID: "vis1",
		Page:      models.PageContext{URL: "https://example.com/signup"},
		Custom:    map[string]any{"plan": "pro"},
	}, time.Now().UTC())

	require.False(t, routeHeatmap)
	require.NotNil(t, evt)
	assert.Equal(t, "custom:signup_completed", evt.EventType)
	assert.Equal(t, "signup_completed", evt.Data["eventName"])
	assert.Equal(t, map[string]any{"plan": "pro"}, evt.Data["custom"])
}

func TestClassify_UnknownType(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()

	evt, routeHeatmap := classifier.Classify("site1", &models.RawEvent{
		Type:      "somefuturetype",
		Timestamp: 1700000000000,
		SessionID: "sess1",
		VisitorID: "vis1",
		Page:      models.PageContext{URL: "https://example.com/"},
	}, time.Now().UTC())

	require.False(t, routeHeatmap)
	require.NotNil(t, evt, "unknown types are stored, not rejected")
	assert.Equal(t, "somefuturetype", evt.EventType)
	assert.Empty(t, evt.Data)
}

func TestClassify_ScrollOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()
	depth := 42

	evt, _ := classifier.Classify("site1", &models.RawEvent{
		Type:      "scroll",
		Timestamp: 1700000000000,
		SessionID: "sess1",
		VisitorID: "vis1",
		Page:      models.PageContext{URL: "https://example.com/"},
		Depth:     &depth,
		// Position deliberately absent
	}, time.Now().UTC())

	require.NotNil(t, evt)
	assert.Equal(t, map[string]any{"depth": 42}, evt.Data)
	assert.NotContains(t, evt.Data, "position", "absent fields are omitted, not defaulted")
}

func TestClassify_PageExit(t *testing.T) {
	t.Parallel()

	classifier := ingestors.NewEventClassifier()
	timeOnPage := int64(30000)
	engagement := int64(12000)
	scrollDepth := 80

	evt, _ := classifier.Classify("site1", &models.RawEvent{
		Type:           "page_exit",
		Timestamp:      1700000000000,
		SessionID:      "sess1",
		VisitorID:      "vis1",
		Page:           models.PageContext{URL: "https://example.com/"},
		TimeOnPage:     &timeOnPage,
		EngagementTime: &engagement,
		ScrollDepth:    &scrollDepth,
	}, time.Now().UTC())

	require.NotNil(t, evt)
	assert.Equal(t, map[string]any{
		"timeOnPage":     int64(30000),
		"engagementTime": int64(12000),
		"scrollDepth":    80,
	}, evt.Data)
}
