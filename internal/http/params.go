package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Query parameter defaults. Ceilings are enforced by the query service,
// not here.
const (
	defaultWindowMinutes        = 60
	defaultTrafficWindowMinutes = 1440
	defaultEndpointLimit        = 10
	defaultErrorLimit           = 20
	defaultSampleSize           = 5

	defaultSortBy = "count"
	defaultOrder  = "desc"
)

// intQueryParam returns the named query parameter as an int, or the
// fallback when the parameter is absent. A present but non-integer value
// is a client error.
func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQueryParam(fmt.Sprintf("%s must be an integer", name), err)
	}
	return value, nil
}

func stringQueryParam(r *http.Request, name, fallback string) string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	return raw
}
