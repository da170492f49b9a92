package health

import "errors"

// ErrCheckFailed can be returned by checks that have no better error to report.
var ErrCheckFailed = errors.New("health: check failed")
