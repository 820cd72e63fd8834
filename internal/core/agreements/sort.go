package agreements

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names one orderable Agreement field
type SortField string

// Closed set of sortable fields
// Query validation rejects anything outside this enumeration
const (
	SortName      SortField = "name"
	SortStatus    SortField = "status"
	SortStartDate SortField = "startDate"
	SortEndDate   SortField = "endDate"
	SortCreatedAt SortField = "createdAt"
)

// sortFields lists the known fields in declaration order for error messages
var sortFields = []SortField{SortName, SortStatus, SortStartDate, SortEndDate, SortCreatedAt}

// pool of root-locale collators
// a Collator keeps an internal buffer and is not safe for concurrent use
var collators = sync.Pool{
	New: func() any { return collate.New(language.Und) },
}

// comparator maps field to its typed ascending comparison
// Text fields compare under collation, date fields by instant
func comparator(cl *collate.Collator, field SortField) func(a, b Agreement) int {
	switch field {
	case SortName:
		return func(a, b Agreement) int { return cl.CompareString(a.Name, b.Name) }
	case SortStatus:
		return func(a, b Agreement) int { return cl.CompareString(a.Status, b.Status) }
	case SortStartDate:
		return func(a, b Agreement) int { return a.StartDate.Compare(b.StartDate) }
	case SortEndDate:
		return func(a, b Agreement) int { return a.EndDate.Compare(b.EndDate) }
	case SortCreatedAt:
		return func(a, b Agreement) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
	return nil
}

// Sort returns a fresh slice of in ordered by field and order
// The sort is stable: records comparing equal keep their input order under
// both orders, since descending only negates the ascending comparison.
// Fields outside the closed set keep the input order; Run rejects them
// during validation before this stage
func Sort(in []Agreement, field SortField, order string) []Agreement {
	out := append([]Agreement(nil), in...)

	cl := collators.Get().(*collate.Collator)
	defer collators.Put(cl)

	cmp := comparator(cl, field)
	if cmp == nil {
		return out
	}
	if order == OrderDesc {
		asc := cmp
		cmp = func(a, b Agreement) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}
