package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/dmitrymomot/npsmail/pkg/logger"
)

const defaultMaxWorkers = 1

// Manager runs scheduled tasks on a River client backed by PostgreSQL.
// The periodic job leader is elected through the database, so several
// instances can run the same schedule without sending twice.
type Manager struct {
	client   *river.Client[pgx.Tx]
	registry *taskRegistry
	logger   *slog.Logger

	mu      sync.Mutex
	started bool
}

// NewManager creates a job manager with the given options.
// Call Start() to begin running schedules.
func NewManager(pool *pgxpool.Pool, opts ...Option) (*Manager, error) {
	if pool == nil {
		return nil, ErrPoolRequired
	}

	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNope()
	}
	if cfg.maxWorkers == 0 {
		cfg.maxWorkers = defaultMaxWorkers
	}

	registry, periodicJobs, err := buildSchedules(cfg.schedules)
	if err != nil {
		return nil, err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &scheduledTaskWorker{
		registry: registry,
		logger:   cfg.logger,
		timeout:  cfg.jobTimeout,
	})

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("job: create client: %w", err)
	}

	return &Manager{
		client:   client,
		registry: registry,
		logger:   cfg.logger,
	}, nil
}

func buildSchedules(schedules []scheduleConfig) (*taskRegistry, []*river.PeriodicJob, error) {
	registry := newTaskRegistry()
	periodicJobs := make([]*river.PeriodicJob, 0, len(schedules))

	for _, sched := range schedules {
		cronSchedule, err := parseCronSchedule(sched.schedule)
		if err != nil {
			return nil, nil, fmt.Errorf("%w %q for %s: %v", ErrInvalidSchedule, sched.schedule, sched.name, err)
		}

		name := sched.name
		periodicJobs = append(periodicJobs, river.NewPeriodicJob(
			cronSchedule,
			func() (river.JobArgs, *river.InsertOpts) {
				return scheduledTaskArgs{TaskName: name}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		))
		registry.register(name, sched.handler)
	}

	return registry, periodicJobs, nil
}

// Start begins running schedules.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return ErrAlreadyStarted
	}

	if err := m.client.Start(ctx); err != nil {
		return fmt.Errorf("job: start client: %w", err)
	}

	m.started = true
	m.logger.Info("job manager started",
		slog.Any("tasks", m.registry.names()),
	)
	return nil
}

// Stop waits for running tasks to finish and shuts the client down.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return ErrNotStarted
	}

	if err := m.client.Stop(ctx); err != nil {
		return fmt.Errorf("job: stop client: %w", err)
	}

	m.started = false
	m.logger.Info("job manager stopped")
	return nil
}

// Trigger enqueues one immediate run of a registered scheduled task.
// The run is picked up once the manager is started.
func (m *Manager) Trigger(ctx context.Context, name string) error {
	if _, ok := m.registry.get(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}

	if _, err := m.client.Insert(ctx, scheduledTaskArgs{TaskName: name}, nil); err != nil {
		return fmt.Errorf("job: trigger %s: %w", name, err)
	}
	return nil
}

// scheduledTaskArgs identifies the scheduled task a River job runs.
type scheduledTaskArgs struct {
	TaskName string `json:"task_name"`
}

func (scheduledTaskArgs) Kind() string {
	return "npsmail:scheduled_task"
}

// InsertOpts disables retries: a failed survey run is not replayed, since
// part of the batch may already have been delivered.
func (scheduledTaskArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}

// scheduledTaskWorker runs every scheduled task through the registry.
type scheduledTaskWorker struct {
	river.WorkerDefaults[scheduledTaskArgs]
	registry *taskRegistry
	logger   *slog.Logger
	timeout  time.Duration
}

// Timeout overrides River's default job timeout, which would cancel the
// batch context part way through a paced send.
func (w *scheduledTaskWorker) Timeout(*river.Job[scheduledTaskArgs]) time.Duration {
	return w.timeout
}

func (w *scheduledTaskWorker) Work(ctx context.Context, job *river.Job[scheduledTaskArgs]) error {
	return w.run(ctx, job.Args.TaskName, job.ID, job.Attempt)
}

func (w *scheduledTaskWorker) run(ctx context.Context, name string, jobID int64, attempt int) error {
	handler, ok := w.registry.get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}

	w.logger.InfoContext(ctx, "running scheduled task",
		slog.String("task", name),
		slog.Int64("job_id", jobID),
		slog.Int("attempt", attempt),
	)

	if err := handler(ctx); err != nil {
		w.logger.ErrorContext(ctx, "scheduled task failed",
			slog.String("task", name),
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		return err
	}

	w.logger.InfoContext(ctx, "scheduled task completed",
		slog.String("task", name),
		slog.Int64("job_id", jobID),
	)
	return nil
}
