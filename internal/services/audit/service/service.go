// Package service implements the query audit recorder
package service

import (
	"context"
	"time"

	"convenios/internal/platform/logger"
	"convenios/internal/services/audit/domain"
)

// Sink is the persistence surface the recorder writes through
type Sink interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, rec domain.QueryRecord) error
}

// Config for the audit service
type Config struct {
	// Timeout caps one insert so a slow sink cannot stall the search path
	Timeout time.Duration
}

// Service implements domain.RecorderPort and domain.SchemaPort
// A nil sink turns both into no-ops, which is how the audit trail is disabled
type Service struct {
	sink Sink
	log  logger.Logger
	cfg  Config
}

// New constructs an audit service; sink may be nil
func New(sink Sink, log logger.Logger, cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Service{sink: sink, log: log, cfg: cfg}
}

// Enabled reports whether records actually reach a sink
func (s *Service) Enabled() bool { return s != nil && s.sink != nil }

// Record implements domain.RecorderPort
// Failures are logged and swallowed, never returned
func (s *Service) Record(ctx context.Context, rec domain.QueryRecord) {
	if !s.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.sink.Insert(ctx, rec); err != nil {
		s.log.Warn().Err(err).
			Str("sort_by", rec.SortBy).
			Int("page", rec.Page).
			Msg("query audit insert failed")
	}
}

// EnsureSchema implements domain.SchemaPort
func (s *Service) EnsureSchema(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.sink.EnsureSchema(ctx)
}
