package survey

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

// Channel names a delivery transport.
type Channel string

// Supported channels.
const (
	ChannelSMTP     Channel = "smtp"     // direct SMTP submission
	ChannelSendGrid Channel = "sendgrid" // transactional email API
	ChannelSES      Channel = "ses"      // cloud email API
	ChannelResend   Channel = "resend"   // transactional email API
)

// ParseChannel normalizes a channel name. Unknown names are returned as is;
// the dispatcher decides what to do with them.
func ParseChannel(s string) Channel {
	return Channel(strings.ToLower(strings.TrimSpace(s)))
}

// Transport delivers one rendered survey to one recipient.
// Implementations never return errors: every failure is an Outcome.
type Transport interface {
	Send(ctx context.Context, r Recipient, msg Message) Outcome
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, r Recipient, msg Message) Outcome

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, r Recipient, msg Message) Outcome {
	return f(ctx, r, msg)
}

// SenderTransport turns a mailer.Sender into a Transport.
// It is the boundary where provider errors and panics become failed outcomes.
type SenderTransport struct {
	sender  mailer.Sender
	text    TextFunc
	tags    mailer.Tags
	logger  *slog.Logger
	from    string
	channel Channel
}

// TransportOption configures a SenderTransport.
type TransportOption func(*SenderTransport)

// WithTextFunc sets the plain-text fallback generator. Without it only HTML is sent.
func WithTextFunc(fn TextFunc) TransportOption {
	return func(t *SenderTransport) {
		t.text = fn
	}
}

// WithFrom overrides the provider's configured sender address.
func WithFrom(from string) TransportOption {
	return func(t *SenderTransport) {
		t.from = from
	}
}

// WithTags attaches provider tags to every message.
func WithTags(tags mailer.Tags) TransportOption {
	return func(t *SenderTransport) {
		t.tags = tags
	}
}

// WithTransportLogger sets the logger for per-attempt status lines.
func WithTransportLogger(l *slog.Logger) TransportOption {
	return func(t *SenderTransport) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewSenderTransport wraps sender as the transport for channel.
func NewSenderTransport(channel Channel, sender mailer.Sender, opts ...TransportOption) *SenderTransport {
	t := &SenderTransport{
		sender:  sender,
		channel: channel,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send implements Transport.
func (t *SenderTransport) Send(ctx context.Context, r Recipient, msg Message) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = Failed(r.Email, fmt.Sprintf("panic: %v", p))
			t.logResult(ctx, r, out)
		}
	}()

	if t.text != nil {
		msg.Text = t.text(r, msg)
	}

	email := &mailer.Email{
		To:      []string{r.Email},
		From:    t.from,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}
	if len(t.tags) > 0 {
		email.Tags = maps.Clone(t.tags)
	}

	if err := t.sender.Send(ctx, email); err != nil {
		out = Failed(r.Email, err.Error())
	} else {
		out = Sent(r.Email)
	}

	t.logResult(ctx, r, out)
	return out
}

func (t *SenderTransport) logResult(ctx context.Context, r Recipient, out Outcome) {
	if out.Success {
		t.logger.InfoContext(ctx, "survey email sent",
			slog.String("channel", string(t.channel)),
			slog.String("email", r.Email),
			slog.String("customer_id", r.ID),
		)
		return
	}
	t.logger.ErrorContext(ctx, "survey email failed",
		slog.String("channel", string(t.channel)),
		slog.String("email", r.Email),
		slog.String("customer_id", r.ID),
		slog.String("error", out.Error),
	)
}
