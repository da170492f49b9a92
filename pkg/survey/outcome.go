package survey

import (
	"fmt"
	"io"
	"strings"
)

const unknownError = "unknown error"

// Outcome is the result of one send attempt.
// Error is non-empty exactly when Success is false.
type Outcome struct {
	Email   string
	Error   string
	Success bool
}

// Sent reports that the channel accepted the message for email.
func Sent(email string) Outcome {
	return Outcome{Success: true, Email: email}
}

// Failed reports a failed attempt. An empty reason becomes "unknown error".
func Failed(email, reason string) Outcome {
	if reason == "" {
		reason = unknownError
	}
	return Outcome{Email: email, Error: reason}
}

// FailedSend pairs a recipient address with the reason its send failed.
type FailedSend struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// BatchResult aggregates the outcomes of one batch.
// Sent+Failed equals the number of attempted recipients; Errors and SentIDs
// keep the input order.
type BatchResult struct {
	Errors  []FailedSend `json:"errors"`
	SentIDs []string     `json:"sent_ids"`
	Sent    int          `json:"sent"`
	Failed  int          `json:"failed"`
}

// Attempted returns the number of recipients that reached a transport.
func (b BatchResult) Attempted() int {
	return b.Sent + b.Failed
}

func (b *BatchResult) record(r Recipient, out Outcome) {
	if out.Success {
		b.Sent++
		b.SentIDs = append(b.SentIDs, r.ID)
		return
	}
	b.Failed++
	b.Errors = append(b.Errors, FailedSend{Email: out.Email, Error: out.Error})
}

// WriteSummary prints a human-readable summary with an itemized error list.
func (b BatchResult) WriteSummary(w io.Writer) error {
	var sb strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&sb, "\n%s\nSUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&sb, "Successfully sent: %d\n", b.Sent)
	fmt.Fprintf(&sb, "Failed: %d\n", b.Failed)
	if len(b.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range b.Errors {
			fmt.Fprintf(&sb, "   - %s: %s\n", e.Email, e.Error)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
