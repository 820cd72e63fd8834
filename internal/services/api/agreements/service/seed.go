package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"convenios/internal/core/agreements"
	"convenios/internal/modkit/repokit"
	perr "convenios/internal/platform/errors"
)

// seedAttempts bounds retries over transient lock and serialization failures
const seedAttempts = 3

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// SampleCatalog returns the fixed seven-record sample catalog: three Active,
// two Draft, one Finalized, one Archived, start dates spanning 2023 to 2025
// IDs are stable so reseeding is deterministic
func SampleCatalog() []agreements.Agreement {
	return []agreements.Agreement{
		{
			ID:          uuid.MustParse("5e7d1c6e-0b6a-4f1e-9c2d-3a8f5b1c9d70"),
			Name:        "Convenio Marco Universidad Nacional",
			Description: "Intercambio académico y doble titulación",
			Status:      agreements.StatusActive,
			StartDate:   day(2023, time.March, 1),
			EndDate:     day(2026, time.February, 28),
			CreatedAt:   at(2023, time.February, 20, 10, 0),
		},
		{
			ID:          uuid.MustParse("0a91f9c2-4d3b-4c6a-8e5f-2b7d9c0a1e34"),
			Name:        "Acuerdo de Intercambio Docente",
			Description: "Estancias de profesorado visitante",
			Status:      agreements.StatusDraft,
			StartDate:   day(2024, time.July, 15),
			EndDate:     day(2025, time.July, 14),
			CreatedAt:   at(2024, time.June, 30, 9, 0),
		},
		{
			ID:          uuid.MustParse("7c54b8d1-9e2f-4a07-b361-5fd48a9c2e16"),
			Name:        "Programa de Movilidad Estudiantil",
			Description: "Movilidad entre universidades asociadas",
			Status:      agreements.StatusActive,
			StartDate:   day(2025, time.January, 10),
			EndDate:     day(2027, time.January, 9),
			CreatedAt:   at(2024, time.December, 1, 8, 30),
		},
		{
			ID:          uuid.MustParse("3f2e8b60-1c7d-4e9a-a845-9b0c6d3f7a28"),
			Name:        "Convenio de Prácticas Profesionales",
			Description: "Inserción laboral supervisada",
			Status:      agreements.StatusFinalized,
			StartDate:   day(2023, time.September, 1),
			EndDate:     day(2024, time.August, 31),
			CreatedAt:   at(2023, time.August, 15, 12, 0),
		},
		{
			ID:          uuid.MustParse("b8e01a37-6f4c-4d52-9a7e-0c3b5d8f1642"),
			Name:        "Alianza de Investigación Aplicada",
			Description: "Proyectos conjuntos de I+D",
			Status:      agreements.StatusActive,
			StartDate:   day(2024, time.February, 1),
			EndDate:     day(2025, time.January, 31),
			CreatedAt:   at(2024, time.January, 10, 15, 45),
		},
		{
			ID:          uuid.MustParse("914c7e2a-3b8d-4f60-8c15-7e9a0b4d2c53"),
			Name:        "Convenio de Cooperación Técnica",
			Description: "Asistencia técnica y transferencia",
			Status:      agreements.StatusArchived,
			StartDate:   day(2023, time.May, 20),
			EndDate:     day(2023, time.December, 31),
			CreatedAt:   at(2023, time.May, 1, 11, 15),
		},
		{
			ID:          uuid.MustParse("d26a5f08-7e1b-4c94-b073-8a2c4e6f9b15"),
			Name:        "Acuerdo de Doble Titulación",
			Description: "Titulación compartida de posgrado",
			Status:      agreements.StatusDraft,
			StartDate:   day(2025, time.June, 1),
			EndDate:     day(2028, time.May, 31),
			CreatedAt:   at(2025, time.May, 5, 16, 20),
		},
	}
}

// Seed ensures the schema and loads the sample catalog in one transaction
// With replace the table is emptied first; otherwise a non-empty catalog is
// refused so a running deployment is never silently reseeded
func (s *Svc) Seed(ctx context.Context, replace bool) (int, error) {
	if err := s.Repo.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	recs := SampleCatalog()
	db := repokit.WithBeginHooks(s.db, seedLockTimeout)

	var err error
	for attempt := 1; attempt <= seedAttempts; attempt++ {
		err = db.Tx(ctx, func(q repokit.Queryer) error {
			r := s.binder.Bind(q)
			if replace {
				if err := r.DeleteAll(ctx); err != nil {
					return err
				}
			} else {
				n, err := r.Count(ctx)
				if err != nil {
					return err
				}
				if n > 0 {
					return perr.Conflictf("catalog already holds %d records, use replace to reload", n)
				}
			}
			return r.InsertBatch(ctx, recs)
		})
		if err == nil || !perr.IsRetryable(err) {
			break
		}
	}
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// seedLockTimeout bounds the wait for the table lock inside the seed tx
func seedLockTimeout(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, `SET LOCAL lock_timeout = '5s'`)
	return err
}
