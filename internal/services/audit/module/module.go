// Package module wires the query audit service and exposes its ports
package module

import (
	"convenios/internal/modkit"
	"convenios/internal/modkit/httpkit"
	"convenios/internal/services/audit/domain"
	"convenios/internal/services/audit/repo"
	"convenios/internal/services/audit/service"
)

// Ports exposed by the audit module
type Ports struct {
	Recorder domain.RecorderPort
	Schema   domain.SchemaPort
}

// Module implements the audit module
// It mounts no routes; other modules consume its Recorder port
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the audit module
// With no clickhouse seam on deps the recorder degrades to a no-op
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var sink service.Sink
	if deps.CH != nil {
		sink = repo.NewCH(deps.CH)
	}
	svc := service.New(sink, deps.Log, service.Config{Timeout: opts.Timeout})

	m := &Module{deps: deps}
	m.ports = Ports{
		Recorder: svc,
		Schema:   svc,
	}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "audit" }

// Prefix returns the module route prefix (none, the module is route-less)
func (m *Module) Prefix() string { return "" }

// MountRoutes mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}
