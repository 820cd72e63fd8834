package agreements

// Result is one pipeline run's output
// Total counts the records that matched the filters before pagination, so a
// caller can derive page counts without a second run
type Result struct {
	Items []Agreement
	Total int
}

// Run executes the pipeline over in: validate, filter, sort, paginate
// A malformed spec aborts with a validation error before any stage runs.
// Run is pure; in is never reordered or mutated and may be shared across
// concurrent runs
func Run(in []Agreement, q Query) (Result, error) {
	if err := q.validate(); err != nil {
		return Result{}, err
	}
	matched := Filter(in, q)
	ordered := Sort(matched, q.SortBy, q.SortOrder)

	return Result{
		Items: Paginate(ordered, q.Page, q.Limit),
		Total: len(matched),
	}, nil
}
