package models

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// LogFileStatus describes the on-disk state of the log file.
type LogFileStatus struct {
	Exists     bool   `json:"exists"`
	Path       string `json:"path"`
	SizeBytes  int64  `json:"size_bytes"`
	TotalLines int    `json:"total_lines"`
}

// HealthStatus is the liveness view: degraded when the log file is missing
// or empty, ok otherwise. LatestTimestamp is empty when no event parsed.
type HealthStatus struct {
	Status          string        `json:"status"`
	LogFile         LogFileStatus `json:"log_file"`
	LatestTimestamp string        `json:"latest_timestamp,omitempty"`
}
