package sendgrid

import "github.com/dmitrymomot/npsmail/pkg/mailer"

// Config holds SendGrid provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	mailer.Identity
	APIKey string `env:"SENDGRID_API_KEY"`
	Host   string `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
}
