package aggregators

import (
	"behavior-analytics/internal/shared/metrics"
)

var (
	metricQueriesServedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_served_total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)
)
