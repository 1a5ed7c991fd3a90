package normalizers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"log-insights/internal/models"
)

// Parse failures. Each one means the line is dropped and counted, never
// that the whole scan aborts.
var (
	ErrInvalidJSON      = errors.New("line is not valid JSON")
	ErrNotAnObject      = errors.New("line is not a JSON object")
	ErrMissingTimestamp = errors.New("record has no parseable timestamp")
)

// fieldPath is one candidate location of a canonical field inside a raw
// record: either a top-level key or a one-level nested key.
type fieldPath []string

// Candidate paths per canonical field, evaluated in priority order with a
// first-present-wins rule. Covers both the flat record shape and the
// nested request/response/http/timing shapes seen in upstream logs.
var (
	timestampPaths = []fieldPath{{"timestamp"}, {"time"}, {"meta", "timestamp"}}
	methodPaths    = []fieldPath{{"method"}, {"request", "method"}, {"http", "method"}}
	pathPaths      = []fieldPath{{"path"}, {"request", "path"}, {"http", "path"}, {"endpoint"}}
	statusPaths    = []fieldPath{{"status_code"}, {"status"}, {"response", "status_code"}, {"http", "status"}}
	durationPaths  = []fieldPath{{"duration_ms"}, {"latency_ms"}, {"response_time_ms"}, {"timing", "duration_ms"}}
	levelPaths     = []fieldPath{{"level"}, {"severity"}}
	eventTypePaths = []fieldPath{{"event_type"}, {"type"}}
	userIDPaths    = []fieldPath{{"user_id"}, {"user", "id"}}
	authPaths      = []fieldPath{{"is_authenticated"}, {"authenticated"}, {"auth", "is_authenticated"}}
	userAgentPaths = []fieldPath{{"user_agent"}, {"request", "user_agent"}, {"http", "user_agent"}}
	errTypePaths   = []fieldPath{{"error_type"}}
	errMsgPaths    = []fieldPath{{"error_message"}}
)

// Textual timestamp encodings accepted, tried in order. Formats without an
// offset are interpreted as UTC.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

//go:generate mockgen -source=normalizer.go -destination=./mocks/normalizer_mock.go -package=mocks
type RecordNormalizer interface {
	// Normalize converts one raw log line into a RequestEvent. A non-nil
	// error marks the line as a parse failure.
	Normalize(line string) (*models.RequestEvent, error)

	// NormalizeObject converts an already-decoded JSON object.
	NormalizeObject(raw map[string]any) (*models.RequestEvent, error)
}

type recordNormalizer struct{}

func New() RecordNormalizer {
	return &recordNormalizer{}
}

func (n *recordNormalizer) Normalize(line string) (*models.RequestEvent, error) {
	var decoded any
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &decoded); err != nil {
		return nil, ErrInvalidJSON
	}

	raw, ok := decoded.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}

	return n.NormalizeObject(raw)
}

func (n *recordNormalizer) NormalizeObject(raw map[string]any) (*models.RequestEvent, error) {
	// Timestamp is the only mandatory field; fail closed, never best-guess.
	ts, ok := parseTimestamp(resolve(raw, timestampPaths))
	if !ok {
		return nil, ErrMissingTimestamp
	}

	event := &models.RequestEvent{
		Timestamp:    ts,
		Level:        coerceToken(resolve(raw, levelPaths), models.LevelUnknown),
		EventType:    coerceToken(resolve(raw, eventTypePaths), ""),
		Method:       coerceToken(resolve(raw, methodPaths), ""),
		Path:         coerceToken(resolve(raw, pathPaths), ""),
		StatusCode:   coerceInt(resolve(raw, statusPaths)),
		DurationMs:   coerceFloat(resolve(raw, durationPaths)),
		UserID:       coerceID(resolve(raw, userIDPaths)),
		UserAgent:    coerceToken(resolve(raw, userAgentPaths), ""),
		ErrorType:    coerceToken(resolve(raw, errTypePaths), ""),
		ErrorMessage: coerceToken(resolve(raw, errMsgPaths), ""),
	}

	if auth, ok := coerceBool(resolve(raw, authPaths)); ok {
		event.IsAuthenticated = auth
	}

	// Negative latencies are treated as absent, not fatal.
	if event.DurationMs != nil && *event.DurationMs < 0 {
		event.DurationMs = nil
	}

	return event, nil
}

// resolve walks the candidate paths in order and returns the first value
// present; nesting source is irrelevant once resolved.
func resolve(raw map[string]any, paths []fieldPath) any {
	for _, path := range paths {
		cur := any(raw)
		found := true
		for _, key := range path {
			obj, ok := cur.(map[string]any)
			if !ok {
				found = false
				break
			}
			cur, ok = obj[key]
			if !ok {
				found = false
				break
			}
		}
		if found && cur != nil {
			return cur
		}
	}
	return nil
}

func parseTimestamp(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)

	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// coerceToken renders a string-ish scalar as a trimmed string, falling back
// to def when absent or unusable.
func coerceToken(v any, def string) string {
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	return def
}

// coerceInt accepts numbers and numeric-looking strings; anything else is
// treated as absent.
func coerceInt(v any) *int {
	switch val := v.(type) {
	case float64:
		i := int(val)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return &i
		}
	}
	return nil
}

func coerceFloat(v any) *float64 {
	switch val := v.(type) {
	case float64:
		f := val
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return &f
		}
	}
	return nil
}

// coerceID renders an opaque identifier. Integral numbers keep their
// integer rendering so 42 and "42" normalize identically.
func coerceID(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

// coerceBool accepts booleans and the usual truthy/falsy tokens. The second
// return is false when the value is absent or unrecognized.
func coerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
	case float64:
		if val == 1 {
			return true, true
		}
		if val == 0 {
			return false, true
		}
	}
	return false, false
}
