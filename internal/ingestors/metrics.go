package ingestors

import (
	"log-insights/internal/shared/metrics"
)

var (
	metricUploadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpload,
			Name:      "uploads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricUploadRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpload,
			Name:      "upload_records_total",
		},
		[]string{"outcome"},
	)
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)
