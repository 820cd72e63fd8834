// Package api provides the HTTP API for the application
package api

import (
	"convenios/internal/platform/config"
	"convenios/internal/platform/logger"
	phttp "convenios/internal/platform/net/http"
	"convenios/internal/platform/store"

	"convenios/internal/modkit"
	"convenios/internal/modkit/httpkit"
	"convenios/internal/modkit/module"
	"convenios/internal/modkit/swaggerkit"

	agrmod "convenios/internal/services/api/agreements/module"
	metamod "convenios/internal/services/api/meta/module"

	// Audit module (owns the Recorder port)
	auditmod "convenios/internal/services/audit/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the audit module first and extract its Recorder port
	audit := auditmod.New(deps)
	rec := module.MustPortsOf[auditmod.Ports](audit).Recorder

	// Inject that Recorder into the agreements module
	agreements := agrmod.New(
		deps,
		modkit.WithPorts(agrmod.Ports{
			Recorder: rec,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		audit,      // route-less, included so its ports are registered
		agreements, // API module that reports runs through the audit Recorder
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
