package booking

import (
	"strings"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

// StateFilter classifies a listing query into a temporal or status bucket,
// evaluated against "now" at read time.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter resolves a filter name, case-insensitively. An empty value
// defaults to ALL. An unknown value is reported as not-found rather than a
// validation failure; approved bookings are only reachable through ALL.
func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch f := StateFilter(strings.ToUpper(s)); f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", apperr.NewNotFound("BookingState", s)
	}
}
