package health

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Probe paths served by Router.
const (
	LivenessPath  = "/health/live"
	ReadinessPath = "/health/ready"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Router returns a chi router serving the liveness and readiness probes
// and any handlers added with WithMount.
func Router(checks Checks, opts ...Option) chi.Router {
	cfg := newConfig(opts...)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(LivenessPath, LivenessHandler())
	r.Get(ReadinessPath, ReadinessHandler(checks, opts...))
	for _, m := range cfg.mounts {
		r.Mount(m.pattern, m.handler)
	}
	return r
}

// Serve runs the probe server on addr until ctx is done, then shuts it down.
func Serve(ctx context.Context, addr string, checks Checks, opts ...Option) error {
	cfg := newConfig(opts...)

	server := &http.Server{
		Addr:              addr,
		Handler:           Router(checks, opts...),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.logger.Info("health server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	cfg.logger.Info("health server stopped")
	return nil
}
