package models

import (
	"strings"
	"time"
)

// LevelUnknown is the sentinel severity for records that carry no level field.
const LevelUnknown = "unknown"

// RequestEvent is the canonical, normalized representation of one logged
// request. Timestamp is the only mandatory field; every other field is
// optional and its zero value (nil for pointers) means the source record
// did not carry it.
type RequestEvent struct {
	Timestamp       time.Time `json:"timestamp"`
	Level           string    `json:"level"`
	EventType       string    `json:"event_type,omitempty"`
	Method          string    `json:"method,omitempty"`
	Path            string    `json:"path,omitempty"`
	StatusCode      *int      `json:"status_code,omitempty"`
	DurationMs      *float64  `json:"duration_ms,omitempty"`
	UserID          string    `json:"user_id,omitempty"`
	IsAuthenticated bool      `json:"is_authenticated"`
	UserAgent       string    `json:"user_agent,omitempty"`
	ErrorType       string    `json:"error_type,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
}

// IsRequest reports whether the event represents an HTTP request:
// both method and path must be present.
func (e *RequestEvent) IsRequest() bool {
	return e.Method != "" && e.Path != ""
}

// IsError reports whether the event is error-classified: a status code of
// 400 or above, or an error-severity level.
func (e *RequestEvent) IsError() bool {
	if e.StatusCode != nil && *e.StatusCode >= 400 {
		return true
	}
	return strings.EqualFold(e.Level, "error")
}
