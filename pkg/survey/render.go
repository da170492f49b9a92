package survey

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder tokens recognized in survey templates.
const (
	TokenScriptURL     = "{{SCRIPT_URL}}"
	TokenCustomerID    = "{{CUSTOMER_ID}}"
	TokenCustomerEmail = "{{CUSTOMER_EMAIL}}"
)

// Message is a survey email rendered for one recipient.
type Message struct {
	Subject string
	HTML    string
	Text    string // filled by the transport, see TextFunc
	Link    string // personal survey link used by text fallbacks
}

// Render substitutes the survey placeholders in tmpl with values for r.
// Replacement is literal and global; unrecognized tokens are left as is.
func Render(tmpl string, r Recipient, surveyBaseURL string) Message {
	replacer := strings.NewReplacer(
		TokenScriptURL, surveyBaseURL,
		TokenCustomerID, r.ID,
		TokenCustomerEmail, r.Email,
	)
	return Message{
		HTML: replacer.Replace(tmpl),
		Link: Link(surveyBaseURL, r),
	}
}

// Link builds the personal survey URL: base?customer=<id>&email=<email>.
// A base URL that does not parse is joined verbatim.
func Link(baseURL string, r Recipient) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Sprintf("%s?customer=%s&email=%s", baseURL, url.QueryEscape(r.ID), url.QueryEscape(r.Email))
	}

	q := u.Query()
	q.Set("customer", r.ID)
	q.Set("email", r.Email)
	u.RawQuery = q.Encode()
	return u.String()
}

// TextFunc produces the plain-text fallback body for a channel.
type TextFunc func(r Recipient, msg Message) string

// LongText is the full plain-text letter sent alongside the HTML part over SMTP.
func LongText(r Recipient, msg Message) string {
	return fmt.Sprintf(`Hi %s,

We'd love to hear your feedback about your recent installation.

Please rate us on a scale of 0-10:
%s

Thank you!
`, r.DisplayName(), msg.Link)
}

// ShortText is the one-line fallback used by the cloud API channel.
func ShortText(_ Recipient, msg Message) string {
	return "Rate us: " + msg.Link
}
