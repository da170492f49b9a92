package job

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_NilPool(t *testing.T) {
	_, err := NewManager(nil)
	assert.ErrorIs(t, err, ErrPoolRequired)
}

func TestBuildSchedules(t *testing.T) {
	t.Parallel()

	handler := func(context.Context) error { return nil }

	registry, jobs, err := buildSchedules([]scheduleConfig{
		{name: "daily", schedule: "0 10 * * *", handler: handler},
		{name: "hourly", schedule: "0 * * * *", handler: handler},
	})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, []string{"daily", "hourly"}, registry.names())
}

func TestBuildSchedules_InvalidCron(t *testing.T) {
	t.Parallel()

	_, _, err := buildSchedules([]scheduleConfig{
		{name: "broken", schedule: "every day", handler: func(context.Context) error { return nil }},
	})
	require.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduledTaskArgs(t *testing.T) {
	t.Parallel()

	args := scheduledTaskArgs{TaskName: "daily"}
	assert.Equal(t, "npsmail:scheduled_task", args.Kind())
	assert.Equal(t, 1, args.InsertOpts().MaxAttempts)
}

func TestMigrate_NilPool(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Migrate(context.Background(), nil, nil), ErrPoolRequired)
}

func TestScheduledTaskWorker_TimeoutOutlastsRiverDefault(t *testing.T) {
	t.Parallel()

	w := &scheduledTaskWorker{timeout: newConfig().jobTimeout}
	job := &river.Job[scheduledTaskArgs]{Args: scheduledTaskArgs{TaskName: "daily"}}

	// A negative timeout disables River's per-job deadline.
	assert.Less(t, w.Timeout(job), time.Duration(0))

	w.timeout = 3 * time.Hour
	assert.Equal(t, 3*time.Hour, w.Timeout(job))
	assert.Greater(t, w.Timeout(job), river.JobTimeoutDefault)
}
