package survey

import (
	"context"
	"log/slog"
)

type batchIDKey struct{}

// WithBatchID returns a context carrying the batch identifier.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDKey{}, id)
}

// BatchIDFromContext returns the batch identifier stored by WithBatchID.
func BatchIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(batchIDKey{}).(string)
	return id, ok && id != ""
}

// LogBatchID is a logger context extractor adding batch_id to every record
// logged within a batch.
func LogBatchID(ctx context.Context) (slog.Attr, bool) {
	id, ok := BatchIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("batch_id", id), true
}
