package aggregators

import "fmt"

// SortField selects the per-endpoint sort key.
type SortField string

const (
	SortByCount SortField = "count"
	SortByP95   SortField = "p95"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByCount, SortByP95:
		return SortField(s), nil
	}
	return "", fmt.Errorf("invalid sort_by %q: must be one of count, p95", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case OrderAsc, OrderDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("invalid order %q: must be one of asc, desc", s)
}
