// Package domain holds the audit record shape and ports
package domain

import "time"

// QueryRecord is one executed catalog search as written to the sink
// Date bounds are kept as the YYYY-MM-DD strings the caller sent, empty when
// a bound was absent
type QueryRecord struct {
	At        time.Time
	Status    string
	Statuses  []string
	DateFrom  string
	DateTo    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
	Total     int
	Returned  int
	ElapsedUS int64
}
