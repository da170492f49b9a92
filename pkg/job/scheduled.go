package job

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"
)

// scheduledHandler wraps a scheduled task's Handle method.
type scheduledHandler func(ctx context.Context) error

// scheduleConfig holds configuration for a scheduled task.
type scheduleConfig struct {
	handler  scheduledHandler
	name     string
	schedule string
}

// taskRegistry stores scheduled task handlers by name.
type taskRegistry struct {
	handlers map[string]scheduledHandler
	mu       sync.RWMutex
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{
		handlers: make(map[string]scheduledHandler),
	}
}

func (r *taskRegistry) register(name string, h scheduledHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

func (r *taskRegistry) get(name string) (scheduledHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok && h != nil
}

// names returns registered task names in sorted order.
func (r *taskRegistry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.handlers))
}

type cronScheduleAdapter struct {
	schedule cron.Schedule
}

func (a *cronScheduleAdapter) Next(current time.Time) time.Time {
	return a.schedule.Next(current)
}

func parseCronSchedule(expr string) (river.PeriodicSchedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &cronScheduleAdapter{schedule: schedule}, nil
}
