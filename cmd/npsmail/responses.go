package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/health"
	"github.com/dmitrymomot/npsmail/pkg/response"
)

// cmdServe serves the survey link endpoints and health probes without the
// scheduler.
func cmdServe(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", a.cfg.HealthAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, err := response.NewHandler(response.NewRepository(pool), a.cfg.Response, response.WithLogger(a.log))
	if err != nil {
		return err
	}

	return health.Serve(ctx, *addr, health.Checks{"database": db.Healthcheck(pool)},
		health.WithLogger(a.log),
		health.WithMount(a.cfg.ResponsePath, handler.Routes()),
	)
}

// cmdReport prints the Net Promoter Score over recorded responses.
func cmdReport(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	days := fs.Int("days", 0, "only count responses from the last N days (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *days < 0 {
		return errors.New("report: -days must not be negative")
	}

	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	report, err := response.NewRepository(pool).Report(ctx, reportSince(time.Now(), *days))
	if err != nil {
		return err
	}
	return report.WriteSummary(a.stdout)
}

func reportSince(now time.Time, days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -days)
}
