package survey

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

// Dispatcher sends a survey to a list of recipients, one at a time.
type Dispatcher struct {
	source     mailer.TemplateSource
	transports map[Channel]Transport
	pacer      Pacer
	logger     *slog.Logger
	config     Config
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPacer replaces the default FixedDelay(cfg.SendDelay) pacing policy.
func WithPacer(p Pacer) DispatcherOption {
	return func(d *Dispatcher) {
		if p != nil {
			d.pacer = p
		}
	}
}

// WithLogger sets the logger for batch progress and the summary.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTransport registers t for channel, replacing any earlier registration.
func WithTransport(channel Channel, t Transport) DispatcherOption {
	return func(d *Dispatcher) {
		d.transports[channel] = t
	}
}

// NewDispatcher creates a dispatcher rendering templates from source.
func NewDispatcher(source mailer.TemplateSource, cfg Config, opts ...DispatcherOption) *Dispatcher {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}

	d := &Dispatcher{
		source:     source,
		transports: make(map[Channel]Transport),
		pacer:      FixedDelay(cfg.SendDelay),
		logger:     logger.NewNope(),
		config:     cfg,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SendBatch surveys recipients in order through the transport for channel.
//
// A recipient whose channel has no transport is skipped: it is logged, not
// counted and not paced. A transport failure is counted and the batch moves
// on. A template that cannot be loaded, or a pacer error such as a cancelled
// context, aborts the batch; the partial result is returned with the error.
func (d *Dispatcher) SendBatch(ctx context.Context, recipients []Recipient, channel Channel) (BatchResult, error) {
	var result BatchResult
	if d.source == nil {
		return result, ErrNoTemplateSource
	}

	ctx = WithBatchID(ctx, uuid.NewString())
	d.logger.InfoContext(ctx, "sending nps surveys",
		slog.Int("recipients", len(recipients)),
		slog.String("channel", string(channel)),
	)

	attempt := 0
	for _, r := range recipients {
		transport, ok := d.transports[channel]
		if !ok || transport == nil {
			d.logger.ErrorContext(ctx, "recipient skipped",
				slog.String("channel", string(channel)),
				slog.String("customer_id", r.ID),
				slog.Any("error", ErrUnknownChannel),
			)
			continue
		}

		msg, err := d.prepare(ctx, r)
		if err != nil {
			d.logger.ErrorContext(ctx, "batch aborted: template unavailable",
				slog.String("customer_id", r.ID),
				slog.Any("error", err),
			)
			return result, err
		}

		result.record(r, transport.Send(ctx, r, msg))
		attempt++

		if err := d.pacer.Wait(ctx, attempt); err != nil {
			d.logger.WarnContext(ctx, "batch interrupted",
				slog.Int("attempted", result.Attempted()),
				slog.Any("error", err),
			)
			return result, err
		}
	}

	d.logSummary(ctx, result)
	return result, nil
}

// prepare loads the template and renders it for r.
// The template is read on every attempt so edits apply mid-batch.
func (d *Dispatcher) prepare(ctx context.Context, r Recipient) (Message, error) {
	tmpl, err := d.source.Load(ctx)
	if err != nil {
		return Message{}, err
	}

	msg := Render(tmpl.Body, r, d.config.ScriptURL)
	msg.Subject = tmpl.Subject
	if msg.Subject == "" {
		msg.Subject = d.config.Subject
	}
	return msg, nil
}

func (d *Dispatcher) logSummary(ctx context.Context, result BatchResult) {
	d.logger.InfoContext(ctx, "nps survey batch finished",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
	for _, e := range result.Errors {
		d.logger.WarnContext(ctx, "survey not delivered",
			slog.String("email", e.Email),
			slog.String("error", e.Error),
		)
	}
}
