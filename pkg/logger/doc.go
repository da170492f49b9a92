// Package logger builds the application's slog logger.
//
// Records go to a JSON (or text) handler at the configured level. Context
// extractors add request-scoped attributes to every record:
//
//	log, flush, err := logger.New(cfg, os.Stdout, survey.LogBatchID)
//	if err != nil {
//		return err
//	}
//	defer flush()
//
// With SENTRY_DSN set the same records are also sent to Sentry: warnings as
// logs, errors as issues. Without it the logger writes to w only.
//
// Use NewNope where a logger is required but output is not wanted.
package logger
