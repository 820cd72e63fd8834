// Package agreements implements the catalog search pipeline over in-memory
// agreement records
// Pipeline order
// 1 Fail-fast validation of the query spec
// 2 Filter by status membership, start date window, and folded substring search
// 3 Stable sort via a typed accessor for the requested field
// 4 Slice out the requested 1-based page
package agreements

import (
	"time"

	"github.com/google/uuid"
)

// Canonical status labels
// Status stays an open string so imported catalogs carrying other labels
// still flow through filtering and sorting untouched
const (
	StatusActive    = "Active"
	StatusDraft     = "Draft"
	StatusFinalized = "Finalized"
	StatusArchived  = "Archived"
)

// KnownStatuses returns the canonical labels in presentation order
func KnownStatuses() []string {
	return []string{StatusActive, StatusDraft, StatusFinalized, StatusArchived}
}

// Agreement is one catalog record
// The pipeline never mutates a record; every stage writes into freshly
// allocated output
type Agreement struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}
