package logger

import "errors"

var (
	ErrUnknownLevel  = errors.New("logger: unknown log level")
	ErrUnknownFormat = errors.New("logger: unknown log format")
	ErrSentryInit    = errors.New("logger: failed to initialize sentry")
)
