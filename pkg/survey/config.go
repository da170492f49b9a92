package survey

import (
	"fmt"
	"strings"
	"time"
)

// DefaultSubject is used when neither the template nor the config sets one.
const DefaultSubject = "How was your installation experience?"

// Sample values shipped in the example configuration.
const (
	placeholderScriptID  = "YOUR_SCRIPT_ID_HERE"
	placeholderEmailUser = "your-email"
)

// Config holds survey dispatch settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// ScriptURL is the survey web app endpoint substituted for {{SCRIPT_URL}}.
	ScriptURL string        `env:"NPS_SCRIPT_URL" envDefault:"https://script.google.com/macros/s/YOUR_SCRIPT_ID_HERE/exec"`
	Subject   string        `env:"NPS_SUBJECT" envDefault:"How was your installation experience?"`
	SendDelay time.Duration `env:"NPS_SEND_DELAY" envDefault:"1s"`
}

// CheckPlaceholders refuses configuration that still carries the sample
// values. smtpUser is the SMTP login, checked the same way.
func (c Config) CheckPlaceholders(smtpUser string) error {
	if strings.Contains(c.ScriptURL, placeholderScriptID) {
		return fmt.Errorf("%w: set NPS_SCRIPT_URL to your survey web app URL", ErrPlaceholderConfig)
	}
	if strings.Contains(smtpUser, placeholderEmailUser) {
		return fmt.Errorf("%w: set SMTP_USER and SMTP_PASSWORD to your credentials", ErrPlaceholderConfig)
	}
	return nil
}
