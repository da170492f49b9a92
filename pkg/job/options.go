package job

import (
	"context"
	"log/slog"
	"time"
)

// config holds job manager configuration.
type config struct {
	logger     *slog.Logger
	schedules  []scheduleConfig
	maxWorkers int
	jobTimeout time.Duration
}

func newConfig() *config {
	return &config{jobTimeout: NoJobTimeout}
}

// Option configures the job manager.
type Option func(*config)

// WithScheduledTask registers a periodic task using structural typing.
// The task must implement Name(), Schedule(), and Handle(ctx) methods.
// Schedule() returns a cron expression (5 fields: min hour day month weekday).
//
// Example:
//
//	type DailySurvey struct{ ... }
//
//	func (t *DailySurvey) Name() string     { return "daily_nps_survey" }
//	func (t *DailySurvey) Schedule() string { return "0 10 * * *" }
//	func (t *DailySurvey) Handle(ctx context.Context) error { ... }
//
//	job.WithScheduledTask(tasks.NewDailySurvey(...))
func WithScheduledTask[T interface {
	Name() string
	Schedule() string
	Handle(context.Context) error
}](task T) Option {
	return func(c *config) {
		c.schedules = append(c.schedules, scheduleConfig{
			name:     task.Name(),
			schedule: task.Schedule(),
			handler:  task.Handle,
		})
	}
}

// WithLogger sets the logger for job processing.
// If not set, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxWorkers sets the number of workers on the default queue.
// Defaults to 1 so scheduled sends never overlap.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxWorkers = n
		}
	}
}

// NoJobTimeout lets a scheduled run take as long as its batch needs.
const NoJobTimeout time.Duration = -1

// WithJobTimeout bounds a single scheduled run.
// Runs are unbounded unless a positive timeout is given.
func WithJobTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.jobTimeout = d
		}
	}
}
