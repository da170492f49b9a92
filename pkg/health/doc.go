// Package health serves liveness and readiness probes for the scheduler daemon.
//
//	checks := health.Checks{"database": db.Healthcheck(pool)}
//	g.Go(func() error { return health.Serve(ctx, ":8080", checks, health.WithLogger(log)) })
//
// The liveness probe always answers OK. The readiness probe runs every check
// in parallel under a shared timeout (5s by default) and answers 503 when any
// of them fails. Both answer JSON when asked with ?format=json or an Accept
// header containing application/json.
package health
