package response

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/npsmail/pkg/logger"
)

// Paths relative to where Routes is mounted.
const (
	RedirectPath = "/"
	RecordPath   = "/record"
)

// Recorder persists survey responses.
type Recorder interface {
	Record(ctx context.Context, resp Response) (int64, error)
}

// Handler serves the links customers click in survey emails.
type Handler struct {
	store    Recorder
	logger   *slog.Logger
	now      func() time.Time
	forward  *url.URL
	thankYou *url.URL
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger for recorded and rejected responses.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock overrides the response timestamp source.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates the link handler. Configured URLs must be absolute.
func NewHandler(store Recorder, cfg Config, opts ...HandlerOption) (*Handler, error) {
	h := &Handler{
		store:  store,
		logger: logger.NewNope(),
		now:    time.Now,
	}

	var err error
	if h.forward, err = parseAbsolute(cfg.ForwardURL); err != nil {
		return nil, fmt.Errorf("response: forward url: %w", err)
	}
	if h.thankYou, err = parseAbsolute(cfg.ThankYouURL); err != nil {
		return nil, fmt.Errorf("response: thank-you url: %w", err)
	}

	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func parseAbsolute(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%q is not absolute", raw)
	}
	return u, nil
}

// Routes returns a router with the redirect and record endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get(RedirectPath, h.Redirect)
	r.Get(RecordPath, h.Record)
	return r
}

// Redirect checks that a survey link is complete and forwards it with a 302,
// either to the configured forward URL or to the record endpoint.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	link := LinkFromQuery(r.URL.Query())
	if !link.Complete() {
		h.rejectLink(w, r)
		return
	}

	target := strings.TrimSuffix(r.URL.Path, "/") + RecordPath + "?" + link.Query().Encode()
	if h.forward != nil {
		target = withQuery(h.forward, link.Query())
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Record validates the score, stores the response and thanks the customer.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := LinkFromQuery(r.URL.Query()).Parse(h.now())
	if err != nil {
		if errors.Is(err, ErrMissingParams) {
			h.rejectLink(w, r)
			return
		}
		h.logger.WarnContext(ctx, "survey response rejected", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid score")
		return
	}

	id, err := h.store.Record(ctx, resp)
	if err != nil {
		h.logger.ErrorContext(ctx, "survey response not recorded",
			slog.String("customer_id", resp.CustomerID),
			slog.Any("error", err),
		)
		writeText(w, http.StatusInternalServerError, "Error processing request")
		return
	}

	h.logger.InfoContext(ctx, "survey response recorded",
		slog.Int64("id", id),
		slog.String("customer_id", resp.CustomerID),
		slog.Int("score", resp.Score),
		slog.String("category", string(resp.Category)),
	)

	if h.thankYou != nil {
		q := url.Values{ParamScore: {strconv.Itoa(resp.Score)}}
		http.Redirect(w, r, withQuery(h.thankYou, q), http.StatusFound)
		return
	}
	h.renderPage(w, r, http.StatusOK, ThankYouPage(resp))
}

func (h *Handler) rejectLink(w http.ResponseWriter, r *http.Request) {
	h.logger.WarnContext(r.Context(), "incomplete survey link", slog.String("query", r.URL.RawQuery))
	h.renderPage(w, r, http.StatusBadRequest, InvalidLinkPage())
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, page Page) {
	var buf bytes.Buffer
	if err := page.Render(r.Context(), &buf); err != nil {
		h.logger.ErrorContext(r.Context(), "page render failed", slog.Any("error", err))
		writeText(w, http.StatusInternalServerError, "Error processing request")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// withQuery returns base with params merged over its existing query.
func withQuery(base *url.URL, params url.Values) string {
	u := *base
	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}
