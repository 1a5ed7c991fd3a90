package logstores

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath    = errors.New("invalid log file path")
	ErrInvalidPayload = errors.New("payload is not a JSON object, JSON array, or JSONL")
)

// Keys under which a wrapping JSON object may carry its record array.
var containerListKeys = []string{"logs", "events", "entries", "data", "items"}

const maxLineBytes = 1024 * 1024

// FileStat describes the current on-disk state of the log file. Absence is
// a reported condition, never an error.
type FileStat struct {
	Exists     bool
	Path       string
	SizeBytes  int64
	TotalLines int
}

// AppendResult reports how many payload records were written as lines and
// how many elements were dropped (non-object array elements, unparseable
// JSONL lines).
type AppendResult struct {
	Accepted int
	Rejected int
}

// LogStore owns the append-only JSONL log file. Reads open an independent
// handle per scan so concurrent readers never block each other; appends are
// whole-line writes flushed before returning, so a line-by-line reader
// never observes a truncated record. No rotation or compaction is provided.
//
//go:generate mockgen -source=log_store.go -destination=./mocks/log_store_mock.go -package=mocks
type LogStore interface {
	// Path returns the absolute path of the log file.
	Path() string

	// Stat never fails; a missing file reports Exists=false with zero sizes.
	Stat(ctx context.Context) FileStat

	// ForEachLine streams non-blank raw lines in file order (== append
	// order). Each call re-opens the file. A missing file yields no lines.
	ForEachLine(ctx context.Context, fn func(line string) error) error

	// Append normalizes the payload container shape (JSONL, JSON array,
	// single JSON object, or object wrapping an array under logs/events/
	// entries/data/items) to one object per line and appends the lines.
	Append(ctx context.Context, payload []byte) (*AppendResult, error)
}

type logStore struct {
	path string
}

func NewLogStore(path string) (LogStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidPath, err)
	}

	return &logStore{path: absPath}, nil
}

func (s *logStore) Path() string {
	return s.path
}

func (s *logStore) Stat(ctx context.Context) FileStat {
	stat := FileStat{Path: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		return stat
	}
	stat.Exists = true
	stat.SizeBytes = info.Size()

	// Best effort: a scan failure leaves the count at zero.
	_ = s.ForEachLine(ctx, func(string) error {
		stat.TotalLines++
		return nil
	})

	return stat
}

func (s *logStore) ForEachLine(ctx context.Context, fn func(line string) error) error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan log file: %w", err)
	}
	return nil
}

func (s *logStore) Append(ctx context.Context, payload []byte) (*AppendResult, error) {
	lines, result, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file for append: %w", err)
	}
	defer file.Close()

	// Single buffered write of whole lines, synced before returning, so a
	// concurrent line reader and a crash both see complete records only.
	var buf bytes.Buffer
	for _, line := range lines {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to append log lines: %w", err)
	}
	if err := file.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync log file: %w", err)
	}

	metricLinesAppendedTotal.Add(float64(result.Accepted))
	return result, nil
}

// normalizePayload flattens any accepted container shape into one compact
// JSON object per line.
func normalizePayload(payload []byte) ([][]byte, *AppendResult, error) {
	result := &AppendResult{}
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, result, nil
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		// Not a single JSON document: treat as JSONL, one record per line.
		return normalizeJSONLines(trimmed, result), result, nil
	}

	switch v := decoded.(type) {
	case []any:
		return marshalObjects(v, result), result, nil
	case map[string]any:
		for _, key := range containerListKeys {
			if list, ok := v[key].([]any); ok {
				return marshalObjects(list, result), result, nil
			}
		}
		// Single JSON object.
		line, err := json.Marshal(v)
		if err != nil {
			return nil, result, fmt.Errorf("failed to marshal record: %w", err)
		}
		result.Accepted = 1
		return [][]byte{line}, result, nil
	default:
		return nil, result, ErrInvalidPayload
	}
}

func normalizeJSONLines(payload []byte, result *AppendResult) [][]byte {
	var lines [][]byte
	for _, raw := range bytes.Split(payload, []byte("\n")) {
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			result.Rejected++
			continue
		}
		lines = append(lines, line)
		result.Accepted++
	}
	return lines
}

func marshalObjects(list []any, result *AppendResult) [][]byte {
	lines := make([][]byte, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			result.Rejected++
			continue
		}
		line, err := json.Marshal(obj)
		if err != nil {
			result.Rejected++
			continue
		}
		lines = append(lines, line)
		result.Accepted++
	}
	return lines
}
