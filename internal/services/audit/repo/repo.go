// Package repo provides clickhouse access for the query audit trail
package repo

import (
	"context"

	"convenios/internal/platform/store"
	"convenios/internal/services/audit/domain"
)

// table holds one row per executed catalog search
const table = "query_audit"

// ddl column order is the insert order used by Insert below
const ddl = `
CREATE TABLE IF NOT EXISTS query_audit (
	at            DateTime64(6, 'UTC'),
	status        String,
	statuses      Array(String),
	date_from     String,
	date_to       String,
	search        String,
	sort_by       String,
	sort_order    String,
	page          Int32,
	page_limit    Int32,
	total_matched Int32,
	returned      Int32,
	elapsed_us    Int64
)
ENGINE = MergeTree
ORDER BY at
`

// CH is the audit repository over the store clickhouse seam
type CH struct {
	db store.Clickhouse
}

// NewCH wires the repository to a clickhouse seam
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("audit repo requires a non nil clickhouse seam")
	}
	return &CH{db: db}
}

// EnsureSchema creates the audit table when missing
func (r *CH) EnsureSchema(ctx context.Context) error {
	return r.db.Exec(ctx, ddl)
}

// Insert writes one audit row
func (r *CH) Insert(ctx context.Context, rec domain.QueryRecord) error {
	statuses := rec.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	row := []any{
		rec.At.UTC(),
		rec.Status,
		statuses,
		rec.DateFrom,
		rec.DateTo,
		rec.Search,
		rec.SortBy,
		rec.SortOrder,
		int32(rec.Page),
		int32(rec.Limit),
		int32(rec.Total),
		int32(rec.Returned),
		rec.ElapsedUS,
	}
	return r.db.Insert(ctx, table, [][]any{row})
}
