package mailer

// Identity is the default sender used when an Email does not override From.
// Provider configs embed it so a single MAIL_FROM_* pair serves every channel.
type Identity struct {
	Name  string `env:"MAIL_FROM_NAME" envDefault:"Your Company"`
	Email string `env:"MAIL_FROM_EMAIL"`
}

// Address returns the identity formatted as an RFC 5322 address,
// or "" when no sender email is configured.
func (i Identity) Address() string {
	return Address(i.Name, i.Email)
}

// Resolve returns from when it is set, otherwise the identity address.
func (i Identity) Resolve(from string) string {
	if from != "" {
		return from
	}
	return i.Address()
}
