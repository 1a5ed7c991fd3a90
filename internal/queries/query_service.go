package queries

import (
	"context"
	"fmt"
	"time"

	"log-insights/internal/aggregators"
	"log-insights/internal/logstores"
	"log-insights/internal/models"
	"log-insights/internal/normalizers"
	"log-insights/internal/shared/loggers"
	"log-insights/internal/shared/metrics"
	"log-insights/internal/shared/svcerrors"
)

const (
	opHealth      = "health"
	opMetrics     = "metrics"
	opEndpoints   = "endpoints"
	opErrors      = "errors"
	opTraffic     = "traffic"
	opDebugSample = "debug_sample"
)

// ParsedLine is the diagnostic view of one raw line: either the normalized
// event or the reason the line was dropped.
type ParsedLine struct {
	Event      *models.RequestEvent `json:"event,omitempty"`
	ParseError string               `json:"parse_error,omitempty"`
}

// DebugSample is a diagnostic passthrough of the first N raw lines and
// their parse outcomes, never used for metrics. TotalParseFailures counts
// failures across the whole file.
type DebugSample struct {
	Raw                []string     `json:"raw"`
	Parsed             []ParsedLine `json:"parsed"`
	TotalParseFailures int          `json:"total_parse_failures"`
}

// QueryService exposes the engine's read operations. Every query re-derives
// its result from the current log state: stateless, zero staleness, cost
// proportional to file size. Read operations degrade gracefully (empty
// results, zero counters) when the log file is absent or fully malformed;
// only malformed requests are rejected.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// GetHealth reports log-file presence and size; it never fails.
	GetHealth(ctx context.Context) *models.HealthStatus

	GetMetrics(ctx context.Context, windowMinutes int) (*models.MetricsSnapshot, error)

	GetEndpointStats(ctx context.Context, windowMinutes int, sortBy, order string, limit int) ([]*models.EndpointStat, error)

	// GetRecentErrors is unwindowed: it scans the whole log.
	GetRecentErrors(ctx context.Context, limit int) ([]*models.RequestEvent, error)

	GetHourlyTraffic(ctx context.Context, windowMinutes int) ([]*models.HourlyBucket, error)

	GetDebugSample(ctx context.Context, n int) (*DebugSample, error)
}

type queryService struct {
	logStore         logstores.LogStore
	normalizer       normalizers.RecordNormalizer
	windowSelector   aggregators.WindowSelector
	aggregator       aggregators.Aggregator
	maxWindowMinutes int
	maxLimit         int
}

func NewQueryService(
	logStore logstores.LogStore,
	normalizer normalizers.RecordNormalizer,
	windowSelector aggregators.WindowSelector,
	aggregator aggregators.Aggregator,
	maxWindowMinutes int,
	maxLimit int,
) QueryService {
	return &queryService{
		logStore:         logStore,
		normalizer:       normalizer,
		windowSelector:   windowSelector,
		aggregator:       aggregator,
		maxWindowMinutes: maxWindowMinutes,
		maxLimit:         maxLimit,
	}
}

func (s *queryService) GetHealth(ctx context.Context) *models.HealthStatus {
	stat := s.logStore.Stat(ctx)

	health := &models.HealthStatus{
		Status: models.StatusOK,
		LogFile: models.LogFileStatus{
			Exists:     stat.Exists,
			Path:       stat.Path,
			SizeBytes:  stat.SizeBytes,
			TotalLines: stat.TotalLines,
		},
	}
	if !stat.Exists || stat.TotalLines == 0 {
		health.Status = models.StatusDegraded
	}

	// Latest event timestamp is best effort; health never fails.
	events, _, err := s.loadEvents(ctx, opHealth)
	if err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("health: log scan failed")
	}
	var latest time.Time
	for _, e := range events {
		if e.Timestamp.After(latest) {
			latest = e.Timestamp
		}
	}
	if !latest.IsZero() {
		health.LatestTimestamp = latest.UTC().Format(time.RFC3339)
	}

	metricQueriesTotal.WithLabelValues(opHealth, metrics.ValueNoError).Inc()
	return health
}

func (s *queryService) GetMetrics(ctx context.Context, windowMinutes int) (*models.MetricsSnapshot, error) {
	if err := s.validateWindow(windowMinutes); err != nil {
		metricQueriesTotal.WithLabelValues(opMetrics, err.Code).Inc()
		return nil, err
	}

	windowed, err := s.loadWindow(ctx, opMetrics, windowMinutes, time.Now())
	if err != nil {
		metricQueriesTotal.WithLabelValues(opMetrics, err.Code).Inc()
		return nil, err
	}

	metricQueriesTotal.WithLabelValues(opMetrics, metrics.ValueNoError).Inc()
	return s.aggregator.ComputeMetrics(windowed), nil
}

func (s *queryService) GetEndpointStats(ctx context.Context, windowMinutes int, sortBy, order string, limit int) ([]*models.EndpointStat, error) {
	if err := s.validateWindow(windowMinutes); err != nil {
		metricQueriesTotal.WithLabelValues(opEndpoints, err.Code).Inc()
		return nil, err
	}
	if err := s.validateLimit(limit); err != nil {
		metricQueriesTotal.WithLabelValues(opEndpoints, err.Code).Inc()
		return nil, err
	}
	sortField, err := aggregators.ParseSortField(sortBy)
	if err != nil {
		svcErr := errValidationFailed(err.Error(), nil)
		metricQueriesTotal.WithLabelValues(opEndpoints, svcErr.Code).Inc()
		return nil, svcErr
	}
	sortOrder, err := aggregators.ParseSortOrder(order)
	if err != nil {
		svcErr := errValidationFailed(err.Error(), nil)
		metricQueriesTotal.WithLabelValues(opEndpoints, svcErr.Code).Inc()
		return nil, svcErr
	}

	windowed, svcErr := s.loadWindow(ctx, opEndpoints, windowMinutes, time.Now())
	if svcErr != nil {
		metricQueriesTotal.WithLabelValues(opEndpoints, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueriesTotal.WithLabelValues(opEndpoints, metrics.ValueNoError).Inc()
	return s.aggregator.ComputeEndpoints(windowed, sortField, sortOrder, limit), nil
}

func (s *queryService) GetRecentErrors(ctx context.Context, limit int) ([]*models.RequestEvent, error) {
	if err := s.validateLimit(limit); err != nil {
		metricQueriesTotal.WithLabelValues(opErrors, err.Code).Inc()
		return nil, err
	}

	events, _, err := s.loadEvents(ctx, opErrors)
	if err != nil {
		svcErr := errInternalLogScanFailed(err)
		metricQueriesTotal.WithLabelValues(opErrors, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueriesTotal.WithLabelValues(opErrors, metrics.ValueNoError).Inc()
	return s.aggregator.ComputeRecentErrors(events, limit), nil
}

func (s *queryService) GetHourlyTraffic(ctx context.Context, windowMinutes int) ([]*models.HourlyBucket, error) {
	if err := s.validateWindow(windowMinutes); err != nil {
		metricQueriesTotal.WithLabelValues(opTraffic, err.Code).Inc()
		return nil, err
	}

	// now is fixed once so selection and bucketing agree.
	now := time.Now()
	windowed, svcErr := s.loadWindow(ctx, opTraffic, windowMinutes, now)
	if svcErr != nil {
		metricQueriesTotal.WithLabelValues(opTraffic, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueriesTotal.WithLabelValues(opTraffic, metrics.ValueNoError).Inc()
	return s.aggregator.ComputeHourlyTraffic(windowed, now, windowMinutes), nil
}

func (s *queryService) GetDebugSample(ctx context.Context, n int) (*DebugSample, error) {
	if n < 1 || n > s.maxLimit {
		svcErr := errValidationFailed(fmt.Sprintf("n must be between 1 and %d", s.maxLimit), nil)
		metricQueriesTotal.WithLabelValues(opDebugSample, svcErr.Code).Inc()
		return nil, svcErr
	}

	sample := &DebugSample{
		Raw:    make([]string, 0, n),
		Parsed: make([]ParsedLine, 0, n),
	}

	err := s.logStore.ForEachLine(ctx, func(line string) error {
		event, parseErr := s.normalizer.Normalize(line)
		if parseErr != nil {
			sample.TotalParseFailures++
		}

		if len(sample.Raw) < n {
			sample.Raw = append(sample.Raw, line)
			parsed := ParsedLine{Event: event}
			if parseErr != nil {
				parsed.ParseError = parseErr.Error()
			}
			sample.Parsed = append(sample.Parsed, parsed)
		}
		return nil
	})
	if err != nil {
		svcErr := errInternalLogScanFailed(err)
		metricQueriesTotal.WithLabelValues(opDebugSample, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricQueriesTotal.WithLabelValues(opDebugSample, metrics.ValueNoError).Inc()
	return sample, nil
}

func (s *queryService) validateWindow(windowMinutes int) *svcerrors.ServiceError {
	if windowMinutes < 1 {
		return errValidationFailed("window_minutes must be >= 1", nil)
	}
	if windowMinutes > s.maxWindowMinutes {
		return errValidationFailed(fmt.Sprintf("window_minutes must be <= %d", s.maxWindowMinutes), nil)
	}
	return nil
}

func (s *queryService) validateLimit(limit int) *svcerrors.ServiceError {
	if limit < 1 || limit > s.maxLimit {
		return errValidationFailed(fmt.Sprintf("limit must be between 1 and %d", s.maxLimit), nil)
	}
	return nil
}

// loadWindow scans the log and returns the events inside the trailing
// window anchored at now.
func (s *queryService) loadWindow(ctx context.Context, operation string, windowMinutes int, now time.Time) ([]*models.RequestEvent, *svcerrors.ServiceError) {
	events, _, err := s.loadEvents(ctx, operation)
	if err != nil {
		return nil, errInternalLogScanFailed(err)
	}
	return s.windowSelector.Select(events, now, windowMinutes), nil
}

// loadEvents parses every line of the log file. Malformed lines are
// skipped and counted; they never abort the scan.
func (s *queryService) loadEvents(ctx context.Context, operation string) ([]*models.RequestEvent, int, error) {
	var events []*models.RequestEvent
	parseFailures := 0

	err := s.logStore.ForEachLine(ctx, func(line string) error {
		event, parseErr := s.normalizer.Normalize(line)
		if parseErr != nil {
			parseFailures++
			return nil
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, parseFailures, err
	}

	if parseFailures > 0 {
		metricParseFailuresTotal.WithLabelValues(operation).Add(float64(parseFailures))
		loggers.Ctx(ctx).Debug().
			Int("parse_failures", parseFailures).
			Str(loggers.FieldOperation, operation).
			Msg("skipped malformed log lines")
	}

	return events, parseFailures, nil
}
