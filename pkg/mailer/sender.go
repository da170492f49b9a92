package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and hands it to the provider.
type Sender interface {
	// Send delivers an email message.
	// A nil error means the provider accepted the message for delivery,
	// not that it reached the inbox.
	Send(ctx context.Context, email *Email) error
}
