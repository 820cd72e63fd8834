package agreements

import (
	"slices"
	"time"

	perr "convenios/internal/platform/errors"
)

// Sort order tokens accepted by Query.SortOrder
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Defaults filled in by Normalized for zero-value spec fields
const (
	DefaultSortBy    = SortCreatedAt
	DefaultSortOrder = OrderDesc
	DefaultPage      = 1
	DefaultLimit     = 10
)

// Query is the complete spec for one pipeline run
// Zero values mean absent for the filter criteria. Status and Statuses may
// both be set; both constraints apply, and a conflicting pair yields an
// empty result rather than an error
type Query struct {
	Status    string
	Statuses  []string
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string
	SortBy    SortField
	SortOrder string
	Page      int
	Limit     int
}

// Normalized returns a copy with zero-value SortBy, SortOrder, Page and
// Limit replaced by the documented defaults
// Anything non-zero passes through untouched, including negatives, so Run
// can reject a bad spec instead of silently repairing it
func (q Query) Normalized() Query {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = DefaultSortOrder
	}
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// validate rejects a malformed spec before any stage runs
func (q Query) validate() error {
	if q.Page < 1 {
		return perr.WithField(perr.Validationf("page must be >= 1, got %d", q.Page), "page")
	}
	if q.Limit < 1 {
		return perr.WithField(perr.Validationf("limit must be >= 1, got %d", q.Limit), "limit")
	}
	if !slices.Contains(sortFields, q.SortBy) {
		return perr.WithField(perr.Validationf("sortBy must be one of %v, got %q", sortFields, q.SortBy), "sortBy")
	}
	switch q.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return perr.WithField(perr.Validationf("sortOrder must be %q or %q, got %q", OrderAsc, OrderDesc, q.SortOrder), "sortOrder")
	}
	return nil
}
