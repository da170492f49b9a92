package mailer

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Each provider adapter maps them to its own notion:
//   - SendGrid: categories (tag names only)
//   - Resend, SES: name-value pairs (presence-only tags become name="true")
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Names returns tag names in sorted order so providers see a stable list.
func (t Tags) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// TagValue converts any tag value to a string.
// Presence-only tags (struct{}{}) become "true".
func TagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Address formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
// A display name alone is not an address, so an empty email yields "".
func Address(name, email string) string {
	if name == "" || email == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags/categories
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative, optional
	From    string            // Override default sender (if provider allows)
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Validate checks the fields every provider needs before a send is attempted.
// Recipient address syntax is left to the provider.
func Validate(email *Email) error {
	switch {
	case email == nil || len(email.To) == 0:
		return ErrNoRecipient
	case email.Subject == "":
		return ErrNoSubject
	case email.HTML == "":
		return ErrNoContent
	}
	return nil
}
