package agreements

// Paginate returns the 1-based page of size limit from in as a fresh slice
// A page starting past the end yields an empty page, not an error. Callers
// reach this stage with positive page and limit; anything else yields an
// empty page as well
func Paginate(in []Agreement, page, limit int) []Agreement {
	if page < 1 || limit < 1 {
		return []Agreement{}
	}
	start := (page - 1) * limit
	if start >= len(in) {
		return []Agreement{}
	}
	end := min(start+limit, len(in))
	return append([]Agreement(nil), in[start:end]...)
}
