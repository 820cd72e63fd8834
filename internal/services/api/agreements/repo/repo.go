// Package repo provides postgres access for the agreements catalog
package repo

import (
	"context"
	"fmt"
	"strings"

	"convenios/internal/core/agreements"
	"convenios/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for the catalog
// ListAll materializes every record; the query pipeline runs in memory over
// that snapshot and never reaches the database
type Repo interface {
	EnsureSchema(ctx context.Context) error
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, recs []agreements.Agreement) error
	ListAll(ctx context.Context) ([]agreements.Agreement, error)
	Count(ctx context.Context) (int, error)
	DistinctStatuses(ctx context.Context) ([]string, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema creates the catalog table when missing
// Idempotent statements, no migration engine
func (r *queries) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS agreements (
	id          uuid PRIMARY KEY,
	name        text NOT NULL,
	description text NOT NULL DEFAULT '',
	status      text NOT NULL,
	start_date  date NOT NULL,
	end_date    date NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
)`
	if _, err := r.q.Exec(ctx, ddl); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `CREATE INDEX IF NOT EXISTS agreements_status_idx ON agreements (status)`)
	return err
}

// DeleteAll empties the catalog
func (r *queries) DeleteAll(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `DELETE FROM agreements`)
	return err
}

// InsertBatch writes recs in one multi-row statement
func (r *queries) InsertBatch(ctx context.Context, recs []agreements.Agreement) error {
	if len(recs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO agreements
		(id, name, description, status, start_date, end_date, created_at) VALUES `)

	args := make([]any, 0, len(recs)*7)
	for i, a := range recs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args,
			a.ID, a.Name, a.Description, a.Status,
			a.StartDate, a.EndDate, a.CreatedAt,
		)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

// ListAll materializes the full catalog in insertion-time order
func (r *queries) ListAll(ctx context.Context) ([]agreements.Agreement, error) {
	const sql = `
SELECT id, name, description, status, start_date, end_date, created_at
FROM agreements
ORDER BY created_at ASC, id ASC
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []agreements.Agreement
	for rows.Next() {
		var a agreements.Agreement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Status, &a.StartDate, &a.EndDate, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count reports the catalog size
func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM agreements`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctStatuses lists the status labels present, sorted
func (r *queries) DistinctStatuses(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT status FROM agreements ORDER BY status ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
