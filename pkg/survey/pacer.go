package survey

import (
	"context"
	"time"
)

// DefaultSendDelay is the pause between two send attempts.
const DefaultSendDelay = time.Second

// Pacer decides how long to wait after an attempt.
// attempt counts attempted recipients starting at 1; skipped recipients are not counted.
// A non-nil error aborts the batch.
type Pacer interface {
	Wait(ctx context.Context, attempt int) error
}

// PacerFunc adapts a function to Pacer.
type PacerFunc func(ctx context.Context, attempt int) error

// Wait implements Pacer.
func (f PacerFunc) Wait(ctx context.Context, attempt int) error {
	return f(ctx, attempt)
}

// FixedDelay waits d after every attempt. It returns early with ctx.Err()
// when the context is done.
func FixedDelay(d time.Duration) Pacer {
	return PacerFunc(func(ctx context.Context, _ int) error {
		if d <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}

// NoDelay never waits.
func NoDelay() Pacer {
	return PacerFunc(func(context.Context, int) error { return nil })
}
