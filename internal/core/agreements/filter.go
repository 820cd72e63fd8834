package agreements

import (
	"strings"

	pstrings "convenios/internal/platform/strings"
)

// predicate reports whether one record satisfies one active criterion
type predicate func(Agreement) bool

// predicates assembles the active criteria for q
// Absent criteria contribute nothing; records must satisfy every entry
func predicates(q Query) []predicate {
	var ps []predicate

	if q.Status != "" {
		want := q.Status
		ps = append(ps, func(a Agreement) bool { return a.Status == want })
	}
	if len(q.Statuses) > 0 {
		want := make(map[string]struct{}, len(q.Statuses))
		for _, s := range q.Statuses {
			want[s] = struct{}{}
		}
		ps = append(ps, func(a Agreement) bool {
			_, ok := want[a.Status]
			return ok
		})
	}
	if q.DateFrom != nil {
		from := *q.DateFrom
		ps = append(ps, func(a Agreement) bool { return !a.StartDate.Before(from) })
	}
	if q.DateTo != nil {
		// the upper bound also applies to StartDate, mirroring the lower
		// bound; EndDate never participates in filtering
		to := *q.DateTo
		ps = append(ps, func(a Agreement) bool { return !a.StartDate.After(to) })
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		ps = append(ps, func(a Agreement) bool {
			return pstrings.FoldContains(a.Name, term) || pstrings.FoldContains(a.Description, term)
		})
	}
	return ps
}

// Filter returns the records of in that satisfy every active criterion of q,
// in their input order
// Status matching is case-sensitive; the search term is trimmed and matched
// case-insensitively against name and description, and an all-whitespace
// term is treated as absent. The result is freshly allocated and in is
// never modified
func Filter(in []Agreement, q Query) []Agreement {
	ps := predicates(q)
	out := make([]Agreement, 0, len(in))

next:
	for _, a := range in {
		for _, p := range ps {
			if !p(a) {
				continue next
			}
		}
		out = append(out, a)
	}
	return out
}
