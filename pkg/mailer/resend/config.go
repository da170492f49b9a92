package resend

import "github.com/dmitrymomot/npsmail/pkg/mailer"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	mailer.Identity
	APIKey string `env:"RESEND_API_KEY"`
}
