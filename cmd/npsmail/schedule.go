package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/npsmail/internal/tasks"
	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/health"
	"github.com/dmitrymomot/npsmail/pkg/job"
	"github.com/dmitrymomot/npsmail/pkg/recipient"
	"github.com/dmitrymomot/npsmail/pkg/response"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

const stopTimeout = 30 * time.Second

// cmdSchedule runs the daily batch on its cron schedule until interrupted,
// serving health probes and the survey link endpoints alongside.
func cmdSchedule(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	channel := fs.String("channel", a.cfg.Channel, "transport: smtp, sendgrid, ses or resend")
	now := fs.Bool("now", false, "also run the batch once right away")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ch := survey.ParseChannel(*channel)
	if err := a.preflight(ch); err != nil {
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

	dispatcher, err := newDispatcher(ctx, a.cfg, ch, a.log)
	if err != nil {
		return err
	}

	responses, err := response.NewHandler(response.NewRepository(pool), a.cfg.Response, response.WithLogger(a.log))
	if err != nil {
		return err
	}

	daily := tasks.NewDailySurvey(recipient.NewRepository(pool), dispatcher, ch, a.cfg.SurveyAfterDays, a.cfg.Schedule, a.log)
	manager, err := job.NewManager(pool,
		job.WithScheduledTask(daily),
		job.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	if err := manager.Start(ctx); err != nil {
		return err
	}
	if *now {
		if err := manager.Trigger(ctx, daily.Name()); err != nil {
			a.log.ErrorContext(ctx, "immediate run not queued", slog.Any("error", err))
		}
	}
	a.log.InfoContext(ctx, "survey scheduler running",
		slog.String("schedule", daily.Schedule()),
		slog.String("channel", string(ch)),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return health.Serve(gctx, a.cfg.HealthAddr, health.Checks{"database": db.Healthcheck(pool)},
			health.WithLogger(a.log),
			health.WithMount(a.cfg.ResponsePath, responses.Routes()),
		)
	})
	g.Go(func() error {
		<-gctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		return manager.Stop(stopCtx)
	})

	return g.Wait()
}
