package smtp

import (
	"time"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

// Config holds SMTP submission settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	mailer.Identity
	Host      string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Username  string        `env:"SMTP_USER"`
	Password  string        `env:"SMTP_PASSWORD"`
	TLSPolicy string        `env:"SMTP_TLS_POLICY" envDefault:"mandatory"` // mandatory, opportunistic or none
	Port      int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout   time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}
