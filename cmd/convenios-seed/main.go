// Command convenios-seed loads the fixed sample catalog into postgres
package main

import (
	"context"
	"flag"

	"convenios/internal/modkit"
	"convenios/internal/modkit/module"
	"convenios/internal/platform/config"
	"convenios/internal/platform/logger"
	"convenios/internal/platform/store"

	agrdom "convenios/internal/services/api/agreements/domain"
	agrmod "convenios/internal/services/api/agreements/module"
	auditmod "convenios/internal/services/audit/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	// clickhouse only hosts the audit table here, disable it when absent
	chEnabled := chCfg.MayBool("ENABLED", true)
	chURL := ""
	if chEnabled {
		chURL = chCfg.MustString("DBURL")
	}

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled:    chEnabled,
			URL:        chURL,
			ClientName: "convenios",
			ClientTag:  "seed",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Flags
	var (
		fReplace = flag.Bool("replace", false, "empty the catalog before loading")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st.PG,
		CH:  st.CH,
	}

	ctx := context.Background()

	// prepare the audit table too so the api can record from its first request
	// EnsureSchema is a no-op when clickhouse is disabled
	audit := auditmod.New(deps)
	module.Register(audit.Name(), audit.Ports())
	if err := module.MustPortsOf[auditmod.Ports](audit).Schema.EnsureSchema(ctx); err != nil {
		l.Fatal().Err(err).Msg("audit schema failed")
	}

	mod := agrmod.New(deps)
	module.Register(mod.Name(), mod.Ports())

	seeder := module.MustPortsOf[agrdom.SeederPort](mod)
	n, err := seeder.Seed(ctx, *fReplace)
	if err != nil {
		l.Fatal().Err(err).Msg("seed failed")
	}
	l.Info().Int("records", n).Bool("replace", *fReplace).Msg("catalog seeded")
}
