package queries

import (
	"log-insights/internal/shared/metrics"
)

var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)

	metricParseFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "parse_failures_total",
		},
		[]string{"operation"},
	)
)
