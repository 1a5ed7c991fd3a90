package logstores

import (
	"log-insights/internal/shared/metrics"
)

var (
	metricLinesAppendedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "lines_appended_total",
		},
		[]string{},
	).WithLabelValues()
)
