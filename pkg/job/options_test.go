package job

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduledTestTask struct {
	schedule string
	runs     int
}

func (t *scheduledTestTask) Name() string     { return "scheduled_test" }
func (t *scheduledTestTask) Schedule() string { return t.schedule }

func (t *scheduledTestTask) Handle(context.Context) error {
	t.runs++
	return nil
}

func TestWithScheduledTask(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	task := &scheduledTestTask{schedule: "0 10 * * *"}
	WithScheduledTask(task)(cfg)

	require.Len(t, cfg.schedules, 1)
	assert.Equal(t, "scheduled_test", cfg.schedules[0].name)
	assert.Equal(t, "0 10 * * *", cfg.schedules[0].schedule)

	require.NoError(t, cfg.schedules[0].handler(context.Background()))
	assert.Equal(t, 1, task.runs)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	WithLogger(logger)(cfg)
	assert.Equal(t, logger, cfg.logger)

	WithLogger(nil)(cfg)
	assert.Equal(t, logger, cfg.logger)
}

func TestWithMaxWorkers(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	WithMaxWorkers(4)(cfg)
	assert.Equal(t, 4, cfg.maxWorkers)

	WithMaxWorkers(0)(cfg)
	assert.Equal(t, 4, cfg.maxWorkers)
}

func TestWithJobTimeout(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	assert.Equal(t, NoJobTimeout, cfg.jobTimeout)

	WithJobTimeout(0)(cfg)
	assert.Equal(t, NoJobTimeout, cfg.jobTimeout)

	WithJobTimeout(2 * time.Hour)(cfg)
	assert.Equal(t, 2*time.Hour, cfg.jobTimeout)
}
