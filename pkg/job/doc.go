// Package job runs periodic tasks on River, a Postgres-native job queue.
//
// Tasks are structs with Name(), Schedule() and Handle(ctx) methods. No
// interface import is required; the package uses structural typing:
//
//	type DailySurvey struct{ ... }
//
//	func (t *DailySurvey) Name() string     { return "daily_nps_survey" }
//	func (t *DailySurvey) Schedule() string { return "0 10 * * *" }
//	func (t *DailySurvey) Handle(ctx context.Context) error { ... }
//
// Register tasks when creating the manager:
//
//	manager, err := job.NewManager(pool,
//		job.WithScheduledTask(tasks.NewDailySurvey(repo, dispatcher, channel, days)),
//		job.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	if err := manager.Start(ctx); err != nil {
//		return err
//	}
//	defer manager.Stop(context.Background())
//
// Schedules use five-field cron expressions parsed by robfig/cron. Runs are
// not retried and the default queue has a single worker, so two runs never
// overlap. Trigger enqueues an immediate run outside the schedule.
//
// River keeps its own tables. Call Migrate once before starting a manager.
package job
