package survey

// defaultName greets recipients whose name is unknown.
const defaultName = "there"

// Recipient is one customer to survey.
type Recipient struct {
	ID          string `json:"customer_id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	InstallDate string `json:"install_date,omitempty"` // informational only
}

// DisplayName returns the name used in greetings.
func (r Recipient) DisplayName() string {
	if r.Name == "" {
		return defaultName
	}
	return r.Name
}
