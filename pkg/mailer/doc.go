// Package mailer provides a provider-neutral email message, the Sender
// interface that delivery channels implement, and template sources for the
// survey HTML document.
//
// # Architecture
//
// The package consists of three parts:
//
//   - Email and Sender: the message shape and the single-method delivery contract
//   - Template and ParseTemplate: an HTML body with optional YAML frontmatter
//   - TemplateSource: loads a Template from a filesystem (FSSource) or an
//     object store (ObjectSource)
//
// Provider adapters live in subpackages:
//
//   - smtp: direct submission with STARTTLS and PLAIN auth
//   - sendgrid: SendGrid v3 Mail Send API
//   - ses: AWS SES v2
//   - resend: Resend API
//
// # Usage
//
//	sender := sendgrid.New(sendgrid.Config{
//		Identity: mailer.Identity{Name: "Your Company", Email: "support@example.com"},
//		APIKey:   os.Getenv("SENDGRID_API_KEY"),
//	})
//
//	err := sender.Send(ctx, &mailer.Email{
//		To:      []string{"john@example.com"},
//		Subject: "How was your installation experience?",
//		HTML:    html,
//	})
//
// # Templates
//
// A template is an HTML document. It may start with YAML frontmatter whose
// Subject key overrides the configured subject:
//
//	---
//	Subject: How was your installation experience?
//	---
//	<html>...{{SCRIPT_URL}}?customer={{CUSTOMER_ID}}...</html>
//
// Sources never cache, so an edited template is picked up by the next send.
//
// # Error Handling
//
// Adapters call Validate before talking to the provider and wrap provider
// failures with their own prefix. Callers that need uniform classification
// can test with errors.Is against the sentinel errors in this package.
package mailer
