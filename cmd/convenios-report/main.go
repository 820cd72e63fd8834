// Command convenios-report runs showcase searches against the catalog and
// verifies the query pipeline end to end, exiting non zero on any mismatch
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"convenios/internal/modkit"
	"convenios/internal/modkit/module"
	"convenios/internal/platform/config"
	"convenios/internal/platform/logger"
	"convenios/internal/platform/store"

	agrdom "convenios/internal/services/api/agreements/domain"
	agrmod "convenios/internal/services/api/agreements/module"
)

func fail(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", a...)
	os.Exit(1)
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
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
		fLimit = flag.Int("limit", 3, "page size used for the page walk")
	)
	flag.Parse()
	if *fLimit < 1 {
		fail("limit must be >= 1")
	}

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st.PG,
	}

	// no recorder injected, report runs stay out of the audit trail
	mod := agrmod.New(deps)
	module.Register(mod.Name(), mod.Ports())
	q := module.MustPortsOf[agrdom.QueryPort](mod)

	ctx := context.Background()
	fmt.Println("agreements catalog report")

	all, err := q.Search(ctx, agrdom.SearchInput{Limit: 500})
	if err != nil {
		fail("unfiltered search: %v", err)
	}
	if all.Total == 0 {
		fail("catalog is empty, run convenios-seed first")
	}
	fmt.Printf("  records .............. %d\n", all.Total)

	walk(ctx, q, all.Total, *fLimit)
	census(ctx, q, all.Total)
	window(ctx, q, all)
	fold(ctx, q, all)
	sorted(ctx, q, all.Total)

	fmt.Println("ok")
}

// walk pages through the whole catalog and checks every record shows up exactly once
func walk(ctx context.Context, q agrdom.QueryPort, total, limit int) {
	seen := make(map[string]bool, total)
	pages := 0
	for page := 1; ; page++ {
		out, err := q.Search(ctx, agrdom.SearchInput{Page: page, Limit: limit})
		if err != nil {
			fail("page %d: %v", page, err)
		}
		if out.Total != total {
			fail("page %d reports total %d, want %d", page, out.Total, total)
		}
		if len(out.Items) == 0 {
			break
		}
		pages++
		for _, it := range out.Items {
			if seen[it.ID] {
				fail("record %s appeared twice during the walk", it.ID)
			}
			seen[it.ID] = true
		}
	}
	if len(seen) != total {
		fail("walk collected %d records, want %d", len(seen), total)
	}
	fmt.Printf("  page walk ............ %d rows across %d pages (limit %d)\n", total, pages, limit)
}

// census checks the per status totals add up and the multi status filter
// with every label selects the whole catalog again
func census(ctx context.Context, q agrdom.QueryPort, total int) {
	labels, err := q.Statuses(ctx)
	if err != nil {
		fail("statuses: %v", err)
	}
	if len(labels) == 0 {
		fail("no status labels on a non empty catalog")
	}

	parts := make([]string, 0, len(labels))
	sum := 0
	for _, s := range labels {
		out, err := q.Search(ctx, agrdom.SearchInput{Status: s, Limit: 1})
		if err != nil {
			fail("status %q: %v", s, err)
		}
		sum += out.Total
		parts = append(parts, fmt.Sprintf("%s=%d", s, out.Total))
	}
	if sum != total {
		fail("status census sums to %d, want %d", sum, total)
	}

	out, err := q.Search(ctx, agrdom.SearchInput{Statuses: labels, Limit: 1})
	if err != nil {
		fail("multi status: %v", err)
	}
	if out.Total != total {
		fail("all labels select %d records, want %d", out.Total, total)
	}
	fmt.Printf("  status census ........ %s\n", strings.Join(parts, " "))
}

// window checks the inclusive start date bounds cover the whole catalog
func window(ctx context.Context, q agrdom.QueryPort, all agrdom.SearchOutput) {
	if len(all.Items) != all.Total {
		fmt.Println("  start date window .... skipped, catalog exceeds one page")
		return
	}

	lo, hi := all.Items[0].StartDate, all.Items[0].StartDate
	for _, it := range all.Items[1:] {
		if it.StartDate < lo {
			lo = it.StartDate
		}
		if it.StartDate > hi {
			hi = it.StartDate
		}
	}

	out, err := q.Search(ctx, agrdom.SearchInput{DateFrom: lo, DateTo: hi, Limit: 1})
	if err != nil {
		fail("window %s..%s: %v", lo, hi, err)
	}
	if out.Total != all.Total {
		fail("window %s..%s selects %d records, want %d", lo, hi, out.Total, all.Total)
	}
	fmt.Printf("  start date window .... %s..%s covers all %d\n", lo, hi, all.Total)
}

// fold checks the text search ignores letter case
func fold(ctx context.Context, q agrdom.QueryPort, all agrdom.SearchOutput) {
	term := all.Items[0].Name
	if fields := strings.Fields(term); len(fields) > 0 {
		term = fields[0]
	}

	lower, err := q.Search(ctx, agrdom.SearchInput{Search: strings.ToLower(term), Limit: 1})
	if err != nil {
		fail("search %q: %v", strings.ToLower(term), err)
	}
	upper, err := q.Search(ctx, agrdom.SearchInput{Search: strings.ToUpper(term), Limit: 1})
	if err != nil {
		fail("search %q: %v", strings.ToUpper(term), err)
	}
	if lower.Total != upper.Total || lower.Total < 1 {
		fail("case fold broke on %q: lower %d upper %d", term, lower.Total, upper.Total)
	}
	fmt.Printf("  fold search .......... %q matches %d either case\n", term, lower.Total)
}

// sorted checks both sort directions on start date and the page past the end
func sorted(ctx context.Context, q agrdom.QueryPort, total int) {
	asc, err := q.Search(ctx, agrdom.SearchInput{SortBy: "startDate", SortOrder: "asc", Limit: 500})
	if err != nil {
		fail("sort asc: %v", err)
	}
	for i := 1; i < len(asc.Items); i++ {
		if asc.Items[i-1].StartDate > asc.Items[i].StartDate {
			fail("ascending start dates out of order at row %d", i)
		}
	}

	desc, err := q.Search(ctx, agrdom.SearchInput{SortBy: "startDate", SortOrder: "desc", Limit: 500})
	if err != nil {
		fail("sort desc: %v", err)
	}
	for i := 1; i < len(desc.Items); i++ {
		if desc.Items[i-1].StartDate < desc.Items[i].StartDate {
			fail("descending start dates out of order at row %d", i)
		}
	}
	fmt.Println("  sort by startDate .... both directions verified")

	past, err := q.Search(ctx, agrdom.SearchInput{Page: total + 1, Limit: 1})
	if err != nil {
		fail("past the end: %v", err)
	}
	if len(past.Items) != 0 || past.Total != total {
		fail("page %d holds %d items with total %d, want an empty page with total %d",
			total+1, len(past.Items), past.Total, total)
	}
	fmt.Printf("  past the last page ... empty page, total still %d\n", total)
}
