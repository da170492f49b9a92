// Package smtp delivers mailer.Email messages by direct SMTP submission.
package smtp

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

// ErrInvalidTLSPolicy is returned by New for an unknown Config.TLSPolicy.
var ErrInvalidTLSPolicy = errors.New("smtp: invalid TLS policy")

// Sender implements mailer.Sender over SMTP.
// Each Send opens its own connection, upgrades it with STARTTLS,
// authenticates and closes it after the message is accepted.
type Sender struct {
	config Config
	policy mail.TLSPolicy
}

// New creates an SMTP sender.
func New(cfg Config) (*Sender, error) {
	policy, err := parseTLSPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}
	return &Sender{config: cfg, policy: policy}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := mailer.Validate(email); err != nil {
		return err
	}

	msg, err := s.buildMessage(email)
	if err != nil {
		return fmt.Errorf("smtp: build message: %w", err)
	}

	client, err := mail.NewClient(s.config.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp: create client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: %w: %w", mailer.ErrSendFailed, err)
	}

	return nil
}

func (s *Sender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTLSPolicy(s.policy),
	}
	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}
	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	return opts
}

// buildMessage renders a multipart/alternative message when a text part is
// present, otherwise a single HTML part.
func (s *Sender) buildMessage(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if email.From != "" {
		if err := msg.From(email.From); err != nil {
			return nil, err
		}
	} else {
		if s.config.Email == "" {
			return nil, mailer.ErrNoSender
		}
		if err := msg.FromFormat(s.config.Name, s.config.Email); err != nil {
			return nil, err
		}
	}

	if err := msg.To(email.To...); err != nil {
		return nil, err
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, err
		}
	}

	msg.Subject(email.Subject)
	for name, value := range email.Headers {
		msg.SetGenHeader(mail.Header(name), value)
	}

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	return msg, nil
}

func parseTLSPolicy(policy string) (mail.TLSPolicy, error) {
	switch policy {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("%w: %q", ErrInvalidTLSPolicy, policy)
	}
}
