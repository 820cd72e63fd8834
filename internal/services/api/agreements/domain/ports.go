package domain

import "context"

// QueryPort is the read surface consumed by handlers and the report binary
type QueryPort interface {
	Search(ctx context.Context, in SearchInput) (SearchOutput, error)
	Statuses(ctx context.Context) ([]string, error)
}

// SeederPort loads the fixed sample catalog
// replace truncates before loading; without it a non-empty catalog is refused
type SeederPort interface {
	Seed(ctx context.Context, replace bool) (int, error)
}
