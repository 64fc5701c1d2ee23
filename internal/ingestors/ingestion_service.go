package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"behavior-analytics/internal/models"
	"behavior-analytics/internal/shared/loggers"
	"behavior-analytics/internal/shared/metrics"
	"behavior-analytics/internal/stores"
)

const (
	defaultMaxBatchBytes = 2 * 1024 * 1024
	maxPageURLLen        = 2048
)

// IngestResult reports the outcome of one batch ingestion. The counts
// partition the submitted events: EventsStored + MouseEventsSampled +
// MouseEventsDropped equals the number of events in the request.
type IngestResult struct {
	EventsStored       int
	MouseEventsSampled int
	MouseEventsDropped int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// CollectBatch processes one batched analytics request. headerSiteID
	// is the X-Site-ID header value and takes precedence over the
	// payload's site_id field.
	CollectBatch(ctx context.Context, headerSiteID string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	siteStore     stores.SiteStore
	sessionStore  stores.SessionStore
	batchStore    stores.AnalyticsBatchStore
	classifier    EventClassifier
	governor      SamplingGovernor
	maxBatchBytes int
}

func NewIngestionService(
	siteStore stores.SiteStore,
	sessionStore stores.SessionStore,
	batchStore stores.AnalyticsBatchStore,
	classifier EventClassifier,
	governor SamplingGovernor,
	maxBatchBytes int,
) IngestionService {
	if maxBatchBytes <= 0 {
		maxBatchBytes = defaultMaxBatchBytes
	}
	return &ingestionService{
		siteStore:     siteStore,
		sessionStore:  sessionStore,
		batchStore:    batchStore,
		classifier:    classifier,
		governor:      governor,
		maxBatchBytes: maxBatchBytes,
	}
}

func (s *ingestionService) CollectBatch(ctx context.Context, headerSiteID string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	payload, err := s.decodePayload(r)
	if err != nil {
		return nil, err
	}

	// Header takes precedence over the payload field.
	siteID := strings.TrimSpace(headerSiteID)
	if siteID == "" {
		siteID = strings.TrimSpace(payload.SiteID)
	}
	if siteID == "" {
		metricBatchIngestedTotal.WithLabelValues(codeMissingSiteID).Inc()
		return nil, errMissingSiteID()
	}

	if err := s.validateEvents(payload.Events); err != nil {
		return nil, err
	}

	// validate_tenant: failure here is terminal for the whole request.
	if _, err := s.siteStore.ResolveSite(ctx, siteID); err != nil {
		if errors.Is(err, stores.ErrSiteNotFound) {
			metricBatchIngestedTotal.WithLabelValues(codeSiteNotFound).Inc()
			return nil, errSiteNotFound(err)
		}
		return nil, errInternalSiteLookupFailed(err)
	}

	logger.Debug().
		Str(loggers.FieldSiteID, siteID).
		Msgf("started ingesting batch of %d events", len(payload.Events))

	now := time.Now().UTC()
	accumulator := NewBatchAccumulator()
	deriver := NewSessionDeriver(s.sessionStore)
	result := &IngestResult{}

	for _, raw := range payload.Events {
		staged, err := deriver.StageIfNew(ctx, siteID, raw, &payload.Meta, now)
		if err != nil {
			return nil, errInternalSessionLookupFailed(err)
		}
		if staged != nil {
			accumulator.AddSession(staged)
		}

		evt, routeHeatmap := s.classifier.Classify(siteID, raw, now)
		if routeHeatmap {
			if !s.governor.Sample(raw.SessionID) {
				result.MouseEventsDropped++
				continue
			}
			result.MouseEventsSampled++
			if point := heatmapPointFromRaw(siteID, raw, now); point != nil {
				accumulator.AddPoint(point)
			}
			continue
		}

		accumulator.AddEvent(evt)
		result.EventsStored++
	}

	// One grouped multi-row write per destination, committed together.
	// On failure nothing is durable and no partial success is reported.
	if err := s.batchStore.WriteBatch(ctx, accumulator.Batch()); err != nil {
		metricBatchIngestedTotal.WithLabelValues(codeInternalBatchWriteFailed).Inc()
		return nil, errInternalBatchWriteFailed(err)
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsStoredTotal.WithLabelValues().Add(float64(result.EventsStored))
	metricSessionsCreatedTotal.WithLabelValues().Add(float64(len(accumulator.Batch().Sessions)))
	metricMouseEventsSampledTotal.WithLabelValues().Add(float64(result.MouseEventsSampled))
	metricMouseEventsDroppedTotal.WithLabelValues().Add(float64(result.MouseEventsDropped))

	return result, nil
}

// decodePayload reads the request body with a size limit and parses it.
// Unrecognized fields are accepted and ignored.
func (s *ingestionService) decodePayload(r io.Reader) (*models.CollectPayload, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, s.maxBatchBytes)
	if err != nil {
		return nil, err
	}

	var payload models.CollectPayload
	if err := json.Unmarshal(buf, &payload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	return &payload, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	limitedReader := io.LimitReader(r, int64(max+1))
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed(fmt.Sprintf("batch too large: must be <= %d bytes", max), nil)
	}
	return buf, nil
}

// validateEvents checks the mandatory envelope fields of every event.
// An empty batch is accepted and produces zero counts.
func (s *ingestionService) validateEvents(events []*models.RawEvent) error {
	for i, raw := range events {
		if raw == nil {
			return errValidationFailed(fmt.Sprintf("event at index %d: empty event object", i), nil)
		}
		if strings.TrimSpace(raw.Type) == "" {
			return errValidationFailed(fmt.Sprintf("event at index %d: missing type", i), nil)
		}
		if raw.Timestamp <= 0 {
			return errValidationFailed(fmt.Sprintf("event at index %d: missing or invalid timestamp", i), nil)
		}
		if strings.TrimSpace(raw.SessionID) == "" {
			return errValidationFailed(fmt.Sprintf("event at index %d: missing sessionId", i), nil)
		}
		if strings.TrimSpace(raw.VisitorID) == "" {
			return errValidationFailed(fmt.Sprintf("event at index %d: missing visitorId", i), nil)
		}
		if raw.Page.URL == "" {
			return errValidationFailed(fmt.Sprintf("event at index %d: missing page.url", i), nil)
		}
		if len(raw.Page.URL) > maxPageURLLen {
			return errValidationFailed(fmt.Sprintf("event at index %d: page.url too long: max %d characters", i, maxPageURLLen), nil)
		}
	}
	return nil
}

// heatmapPointFromRaw builds the heatmap row for a sampled-in mousemove.
// Mousemoves without a position are counted but produce no row.
func heatmapPointFromRaw(siteID string, raw *models.RawEvent, now time.Time) *models.HeatmapPoint {
	if raw.Position == nil {
		return nil
	}
	return &models.HeatmapPoint{
		SiteID:    siteID,
		SessionID: raw.SessionID,
		PageURL:   raw.Page.URL,
		X:         coordinate(raw.Position, "x"),
		Y:         coordinate(raw.Position, "y"),
		Count:     1,
		CreatedAt: now,
	}
}

// coordinate reads an integer pixel coordinate from a decoded JSON map,
// defaulting to 0 when absent or non-numeric.
func coordinate(position map[string]any, key string) int {
	v, ok := position[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
