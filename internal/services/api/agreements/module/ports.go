package module

import (
	"context"

	"convenios/internal/services/api/agreements/domain"
	asvc "convenios/internal/services/api/agreements/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCatalogPort exposes service methods as module ports for cross-module usage
type adaptCatalogPort struct{ svc asvc.Service }

func (a adaptCatalogPort) Search(ctx context.Context, in domain.SearchInput) (domain.SearchOutput, error) {
	return a.svc.Search(ctx, in)
}

func (a adaptCatalogPort) Statuses(ctx context.Context) ([]string, error) {
	return a.svc.Statuses(ctx)
}

func (a adaptCatalogPort) Seed(ctx context.Context, replace bool) (int, error) {
	return a.svc.Seed(ctx, replace)
}
