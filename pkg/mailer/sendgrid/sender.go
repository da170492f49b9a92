// Package sendgrid delivers mailer.Email messages through the SendGrid v3 Mail Send API.
package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

const sendEndpoint = "/v3/mail/send"

var (
	// ErrMissingAPIKey is returned when Send is called without a configured API key.
	ErrMissingAPIKey = errors.New("sendgrid: API key not configured")

	// ErrRejected is returned when SendGrid answers with a non-2xx status.
	ErrRejected = errors.New("sendgrid: request rejected")
)

// Sender implements mailer.Sender using the SendGrid v3 API.
type Sender struct {
	config Config
}

// New creates a SendGrid sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := mailer.Validate(email); err != nil {
		return err
	}
	if s.config.APIKey == "" {
		return ErrMissingAPIKey
	}

	message, err := s.buildMessage(email)
	if err != nil {
		return fmt.Errorf("sendgrid: build message: %w", err)
	}

	req := sendgrid.GetRequest(s.config.APIKey, sendEndpoint, s.config.Host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(message)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w: %w", mailer.ErrSendFailed, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %w: status %d: %s", mailer.ErrSendFailed, ErrRejected, resp.StatusCode, resp.Body)
	}

	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) (*sgmail.SGMailV3, error) {
	from, err := s.fromAddress(email.From)
	if err != nil {
		return nil, err
	}

	p := sgmail.NewPersonalization()
	for _, to := range email.To {
		p.AddTos(sgmail.NewEmail("", to))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = email.Subject
	m.AddPersonalizations(p)

	// SendGrid requires text/plain to precede text/html.
	if email.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", email.Text))
	}
	m.AddContent(sgmail.NewContent("text/html", email.HTML))

	if email.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", email.ReplyTo))
	}
	for name, value := range email.Headers {
		m.SetHeader(name, value)
	}
	if names := email.Tags.Names(); len(names) > 0 {
		m.AddCategories(names...)
	}

	return m, nil
}

func (s *Sender) fromAddress(override string) (*sgmail.Email, error) {
	if override == "" {
		if s.config.Email == "" {
			return nil, mailer.ErrNoSender
		}
		return sgmail.NewEmail(s.config.Name, s.config.Email), nil
	}

	addr, err := mail.ParseAddress(override)
	if err != nil {
		return nil, err
	}
	return sgmail.NewEmail(addr.Name, addr.Address), nil
}
