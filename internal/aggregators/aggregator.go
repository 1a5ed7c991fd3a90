package aggregators

import (
	"math"
	"sort"
	"strconv"
	"time"

	"log-insights/internal/models"

	"github.com/mileusna/useragent"
)

// Aggregator reduces a set of normalized request events into the derived
// metric views. Every view is recomputed from scratch per call; nothing is
// cached or mutated incrementally.
//
//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// ComputeMetrics derives the global snapshot over the given events.
	ComputeMetrics(events []*models.RequestEvent) *models.MetricsSnapshot

	// ComputeEndpoints derives per-path stats, sorted by the given field
	// and direction, ties broken by first-seen order, capped at limit.
	ComputeEndpoints(events []*models.RequestEvent, sortBy SortField, order SortOrder, limit int) []*models.EndpointStat

	// ComputeRecentErrors returns error-classified events, most recent
	// first, capped at limit.
	ComputeRecentErrors(events []*models.RequestEvent, limit int) []*models.RequestEvent

	// ComputeHourlyTraffic buckets request events into the absolute hours
	// covering [now - minutes, now], emitting zero-count buckets so the
	// histogram has no gaps.
	ComputeHourlyTraffic(events []*models.RequestEvent, now time.Time, minutes int) []*models.HourlyBucket
}

type aggregator struct{}

func New() Aggregator {
	return &aggregator{}
}

func (a *aggregator) ComputeMetrics(events []*models.RequestEvent) *models.MetricsSnapshot {
	snapshot := models.NewEmptyMetricsSnapshot()

	requests := filterRequests(events)
	snapshot.TotalRequests = len(requests)

	users := make(map[string]struct{})
	var durations []float64

	for _, e := range requests {
		if e.StatusCode != nil {
			snapshot.RequestsByStatus[strconv.Itoa(*e.StatusCode)]++
			if *e.StatusCode >= 400 {
				snapshot.ErrorCount++
			}
		}
		if e.Method != "" {
			snapshot.RequestsByMethod[e.Method]++
		}
		if e.UserAgent != "" {
			snapshot.RequestsByBrowser[normalizeBrowser(e.UserAgent)]++
		}
		if e.DurationMs != nil {
			durations = append(durations, *e.DurationMs)
		}
		if e.UserID != "" {
			users[e.UserID] = struct{}{}
		}
		if e.IsAuthenticated {
			snapshot.AuthenticatedRequests++
		}
	}

	if snapshot.TotalRequests > 0 {
		snapshot.ErrorRate = 100 * float64(snapshot.ErrorCount) / float64(snapshot.TotalRequests)
	}

	sort.Float64s(durations)
	snapshot.AvgResponseTime = mean(durations)
	snapshot.P50ResponseTime = percentile(durations, 50)
	snapshot.P95ResponseTime = percentile(durations, 95)
	snapshot.P99ResponseTime = percentile(durations, 99)
	snapshot.UniqueUsers = len(users)

	return snapshot
}

func (a *aggregator) ComputeEndpoints(events []*models.RequestEvent, sortBy SortField, order SortOrder, limit int) []*models.EndpointStat {
	requests := filterRequests(events)

	// Group by exact path, remembering first-seen order for tie-breaks.
	groups := make(map[string][]*models.RequestEvent)
	var pathOrder []string
	for _, e := range requests {
		if _, seen := groups[e.Path]; !seen {
			pathOrder = append(pathOrder, e.Path)
		}
		groups[e.Path] = append(groups[e.Path], e)
	}

	stats := make([]*models.EndpointStat, 0, len(pathOrder))
	for _, path := range pathOrder {
		group := groups[path]

		stat := &models.EndpointStat{Path: path, Count: len(group)}
		var durations []float64
		for _, e := range group {
			if e.StatusCode != nil && *e.StatusCode >= 400 {
				stat.Errors++
			}
			if e.DurationMs != nil {
				durations = append(durations, *e.DurationMs)
			}
		}
		sort.Float64s(durations)
		stat.AvgResponseTime = mean(durations)
		stat.P95ResponseTime = percentile(durations, 95)
		if stat.Count > 0 {
			stat.ErrorRate = 100 * float64(stat.Errors) / float64(stat.Count)
		}
		stats = append(stats, stat)
	}

	// Stable sort keeps first-seen order on ties.
	sort.SliceStable(stats, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByP95:
			less = stats[i].P95ResponseTime < stats[j].P95ResponseTime
		default:
			less = stats[i].Count < stats[j].Count
		}
		if order == OrderDesc {
			return !less && !endpointKeyEqual(stats[i], stats[j], sortBy)
		}
		return less
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func (a *aggregator) ComputeRecentErrors(events []*models.RequestEvent, limit int) []*models.RequestEvent {
	var errs []*models.RequestEvent
	for _, e := range events {
		if e.IsError() {
			errs = append(errs, e)
		}
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Timestamp.After(errs[j].Timestamp)
	})

	if limit > 0 && len(errs) > limit {
		errs = errs[:limit]
	}
	return errs
}

func (a *aggregator) ComputeHourlyTraffic(events []*models.RequestEvent, now time.Time, minutes int) []*models.HourlyBucket {
	counts := make(map[string]int64)
	for _, e := range filterRequests(events) {
		counts[models.HourLabel(e.Timestamp)]++
	}

	start := now.Add(-time.Duration(minutes) * time.Minute).UTC().Truncate(time.Hour)
	end := now.UTC().Truncate(time.Hour)

	var buckets []*models.HourlyBucket
	for hour := start; !hour.After(end); hour = hour.Add(time.Hour) {
		label := models.HourLabel(hour)
		buckets = append(buckets, &models.HourlyBucket{Hour: label, Count: counts[label]})
	}
	return buckets
}

// percentile selects the value at rank ceil(p/100*n)-1 over the ascending
// values, clamped to [0, n-1]. Zero values yield 0, not an error; at n=1
// every percentile is the single value.
func percentile(sorted []float64, p int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := int(math.Ceil(float64(p)/100*float64(n))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank > n-1 {
		rank = n - 1
	}
	return sorted[rank]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func filterRequests(events []*models.RequestEvent) []*models.RequestEvent {
	requests := make([]*models.RequestEvent, 0, len(events))
	for _, e := range events {
		if e.IsRequest() {
			requests = append(requests, e)
		}
	}
	return requests
}

func endpointKeyEqual(a, b *models.EndpointStat, sortBy SortField) bool {
	if sortBy == SortByP95 {
		return a.P95ResponseTime == b.P95ResponseTime
	}
	return a.Count == b.Count
}

// normalizeBrowser parses the user agent into a browser family, falling
// back to the raw string when parsing yields nothing.
func normalizeBrowser(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
