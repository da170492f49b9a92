package response

// Config configures the survey link endpoints.
type Config struct {
	// ForwardURL, when set, receives every complete link from the redirect
	// endpoint instead of the local record endpoint.
	ForwardURL string `env:"NPS_FORWARD_URL"`

	// ThankYouURL, when set, replaces the built-in thank-you page.
	// The recorded score is appended as ?score=N.
	ThankYouURL string `env:"NPS_THANK_YOU_URL"`
}
