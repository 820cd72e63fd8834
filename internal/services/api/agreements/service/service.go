// Package service contains the agreements catalog workflows
package service

import (
	"context"
	"time"

	"convenios/internal/core/agreements"
	"convenios/internal/modkit/repokit"
	perr "convenios/internal/platform/errors"
	"convenios/internal/services/api/agreements/domain"
	"convenios/internal/services/api/agreements/repo"
	auditdom "convenios/internal/services/audit/domain"
)

// dateLayout is the wire format for date bounds
const dateLayout = "2006-01-02"

// Service defines the agreements service contract
type Service interface {
	domain.QueryPort
	domain.SeederPort
}

// Svc implements the agreements service
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	recorder auditdom.RecorderPort
}

// New constructs an agreements service
// recorder may be nil, which disables the query audit trail
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], recorder auditdom.RecorderPort) *Svc {
	if db == nil {
		panic("agreements.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("agreements.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, recorder: recorder}
}

// Search materializes the catalog, runs the query pipeline over the snapshot,
// and maps the requested page back to transport rows
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchOutput, error) {
	q, err := toQuery(in)
	if err != nil {
		return domain.SearchOutput{}, err
	}
	q = q.Normalized()

	started := time.Now()
	recs, err := s.Repo.ListAll(ctx)
	if err != nil {
		return domain.SearchOutput{}, err
	}
	res, err := agreements.Run(recs, q)
	if err != nil {
		return domain.SearchOutput{}, err
	}

	out := domain.SearchOutput{
		Items: toRows(res.Items),
		Total: res.Total,
		Page:  q.Page,
		Limit: q.Limit,
	}
	s.record(ctx, in, q, res, time.Since(started))
	return out, nil
}

// Statuses lists the distinct status labels present in the catalog
func (s *Svc) Statuses(ctx context.Context) ([]string, error) {
	return s.Repo.DistinctStatuses(ctx)
}

// toQuery maps the transport DTO onto a core query spec
// Date bounds are parsed here; everything else passes through for the core
// to validate after normalization
func toQuery(in domain.SearchInput) (agreements.Query, error) {
	q := agreements.Query{
		Status:    in.Status,
		Statuses:  in.Statuses,
		Search:    in.Search,
		SortBy:    agreements.SortField(in.SortBy),
		SortOrder: in.SortOrder,
		Page:      in.Page,
		Limit:     in.Limit,
	}
	if in.DateFrom != "" {
		t, err := time.Parse(dateLayout, in.DateFrom)
		if err != nil {
			return agreements.Query{}, perr.WithField(perr.Validationf("dateFrom must be YYYY-MM-DD, got %q", in.DateFrom), "dateFrom")
		}
		q.DateFrom = &t
	}
	if in.DateTo != "" {
		t, err := time.Parse(dateLayout, in.DateTo)
		if err != nil {
			return agreements.Query{}, perr.WithField(perr.Validationf("dateTo must be YYYY-MM-DD, got %q", in.DateTo), "dateTo")
		}
		q.DateTo = &t
	}
	return q, nil
}

// toRows maps core records to transport rows
func toRows(items []agreements.Agreement) []domain.AgreementRow {
	out := make([]domain.AgreementRow, 0, len(items))
	for _, a := range items {
		out = append(out, domain.AgreementRow{
			ID:          a.ID.String(),
			Name:        a.Name,
			Description: a.Description,
			Status:      a.Status,
			StartDate:   a.StartDate.Format(dateLayout),
			EndDate:     a.EndDate.Format(dateLayout),
			CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// record reports one completed run to the audit sink
// Rejected specs never ran the pipeline and are not recorded
func (s *Svc) record(ctx context.Context, in domain.SearchInput, q agreements.Query, res agreements.Result, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(ctx, auditdom.QueryRecord{
		At:        time.Now().UTC(),
		Status:    in.Status,
		Statuses:  in.Statuses,
		DateFrom:  in.DateFrom,
		DateTo:    in.DateTo,
		Search:    in.Search,
		SortBy:    string(q.SortBy),
		SortOrder: q.SortOrder,
		Page:      q.Page,
		Limit:     q.Limit,
		Total:     res.Total,
		Returned:  len(res.Items),
		ElapsedUS: elapsed.Microseconds(),
	})
}
