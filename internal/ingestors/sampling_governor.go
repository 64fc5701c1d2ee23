package ingestors

import "sync"

const DefaultMouseSampleRate = 5

// SamplingGovernor decides whether a given mousemove occurrence is
// persisted. It keeps one monotonically increasing counter per session
// for the lifetime of the process; the counters are neither persisted
// nor shared across instances, so the every-Nth guarantee is
// per-instance and lost on restart.
//
//go:generate mockgen -source=sampling_governor.go -destination=./mocks/sampling_governor_mock.go -package=mocks
type SamplingGovernor interface {
	// Sample increments the session's counter and reports whether this
	// occurrence is selected for persistence (every Nth one is). The
	// increment-then-test is atomic per call.
	Sample(sessionID string) bool
	// Counter returns the number of occurrences seen for a session.
	Counter(sessionID string) int64
}

type samplingGovernor struct {
	mu       sync.Mutex
	rate     int64
	counters map[string]int64
}

func NewSamplingGovernor(rate int) SamplingGovernor {
	if rate <= 0 {
		rate = DefaultMouseSampleRate
	}
	return &samplingGovernor{
		rate:     int64(rate),
		counters: make(map[string]int64),
	}
}

func (g *samplingGovernor) Sample(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[sessionID]++
	return g.counters[sessionID]%g.rate == 0
}

func (g *samplingGovernor) Counter(sessionID string) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.counters[sessionID]
}
