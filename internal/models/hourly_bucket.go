package models

import "time"

// HourlyBucket is one hour of the traffic histogram. Buckets inside the
// requested window are always emitted, zero-count included, so the
// histogram has no gaps.
type HourlyBucket struct {
	Hour  string `json:"hour"`
	Count int64  `json:"count"`
}

// HourLabel formats the absolute-hour truncation of t in UTC,
// e.g. "2025-12-28T18:00Z". It is the bucket key for hourly traffic.
func HourLabel(t time.Time) string {
	return t.UTC().Truncate(time.Hour).Format("2006-01-02T15:04Z")
}
