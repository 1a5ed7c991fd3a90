package models

// MetricsSnapshot is the derived global view over a window of request
// events. It is recomputed fresh on every query and never persisted.
//
// Example JSON:
//
//	{
//	  "total_requests": 1204,
//	  "error_count": 17,
//	  "error_rate": 1.41,
//	  "avg_response_time": 83.2,
//	  "p50_response_time": 61,
//	  "p95_response_time": 240,
//	  "p99_response_time": 410,
//	  "requests_by_status": {"200": 1100, "404": 12, "500": 5},
//	  "requests_by_method": {"GET": 1000, "POST": 204},
//	  "requests_by_browser": {"Chrome": 800, "Firefox": 300, "curl": 104},
//	  "unique_users": 77,
//	  "authenticated_requests": 410
//	}
type MetricsSnapshot struct {
	TotalRequests         int              `json:"total_requests"`
	ErrorCount            int              `json:"error_count"`
	ErrorRate             float64          `json:"error_rate"`
	AvgResponseTime       float64          `json:"avg_response_time"`
	P50ResponseTime       float64          `json:"p50_response_time"`
	P95ResponseTime       float64          `json:"p95_response_time"`
	P99ResponseTime       float64          `json:"p99_response_time"`
	RequestsByStatus      map[string]int64 `json:"requests_by_status"`
	RequestsByMethod      map[string]int64 `json:"requests_by_method"`
	RequestsByBrowser     map[string]int64 `json:"requests_by_browser"`
	UniqueUsers           int              `json:"unique_users"`
	AuthenticatedRequests int              `json:"authenticated_requests"`
}

// NewEmptyMetricsSnapshot returns a snapshot with all counters at zero and
// empty (non-nil) distribution maps, the valid result for an empty window.
func NewEmptyMetricsSnapshot() *MetricsSnapshot {
	return &MetricsSnapshot{
		RequestsByStatus:  make(map[string]int64),
		RequestsByMethod:  make(map[string]int64),
		RequestsByBrowser: make(map[string]int64),
	}
}
