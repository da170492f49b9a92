package job

import "errors"

// Job errors.
var (
	// ErrUnknownTask is returned when triggering a task that was not registered.
	ErrUnknownTask = errors.New("job: unknown task")

	// ErrAlreadyStarted is returned when attempting to start a manager
	// that is already running.
	ErrAlreadyStarted = errors.New("job: already started")

	// ErrNotStarted is returned when attempting to stop a manager
	// that is not running.
	ErrNotStarted = errors.New("job: not started")

	// ErrPoolRequired is returned when attempting to create a manager
	// without providing a database pool.
	ErrPoolRequired = errors.New("job: pool is required")

	// ErrInvalidSchedule is returned for a cron expression that does not parse.
	ErrInvalidSchedule = errors.New("job: invalid cron schedule")

	// ErrMigrate is returned when the queue schema cannot be migrated.
	ErrMigrate = errors.New("job: failed to migrate queue schema")
)
