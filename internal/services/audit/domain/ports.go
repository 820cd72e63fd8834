package domain

import "context"

// RecorderPort accepts query records for the audit trail
// Implementations absorb their own failures; recording must never change the
// outcome of the search that produced the record
type RecorderPort interface {
	Record(ctx context.Context, rec QueryRecord)
}

// SchemaPort prepares the sink storage
type SchemaPort interface {
	EnsureSchema(ctx context.Context) error
}
