package models

// EndpointStat is the derived per-path view within a window. Paths are
// grouped by exact string: /products/1 and /products/2 are distinct.
type EndpointStat struct {
	Path            string  `json:"path"`
	Count           int     `json:"count"`
	Errors          int     `json:"errors"`
	ErrorRate       float64 `json:"error_rate"`
	AvgResponseTime float64 `json:"avg_response_time"`
	P95ResponseTime float64 `json:"p95_response_time"`
}
