package response

import (
	"fmt"
	"io"
	"strings"
)

// Report aggregates responses into NPS buckets.
type Report struct {
	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
}

// Add counts one response in its category.
func (r *Report) Add(c Category) {
	switch c {
	case Promoter:
		r.Promoters++
	case Passive:
		r.Passives++
	case Detractor:
		r.Detractors++
	}
}

// Total returns the number of counted responses.
func (r Report) Total() int {
	return r.Promoters + r.Passives + r.Detractors
}

// Percent returns n as a percentage of the total, 0 when there are no responses.
func (r Report) Percent(n int) float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// NPS returns the Net Promoter Score, from -100 to 100.
func (r Report) NPS() float64 {
	return r.Percent(r.Promoters - r.Detractors)
}

// WriteSummary prints totals, bucket percentages and the score.
func (r Report) WriteSummary(w io.Writer) error {
	total := r.Total()
	if total == 0 {
		_, err := io.WriteString(w, "No responses yet!\n")
		return err
	}

	var sb strings.Builder
	sb.WriteString("=== NPS REPORT ===\n")
	fmt.Fprintf(&sb, "Total Responses: %d\n", total)
	fmt.Fprintf(&sb, "Promoters (9-10): %d (%.1f%%)\n", r.Promoters, r.Percent(r.Promoters))
	fmt.Fprintf(&sb, "Passives (7-8): %d (%.1f%%)\n", r.Passives, r.Percent(r.Passives))
	fmt.Fprintf(&sb, "Detractors (0-6): %d (%.1f%%)\n", r.Detractors, r.Percent(r.Detractors))
	fmt.Fprintf(&sb, "NPS Score: %.1f\n", r.NPS())
	sb.WriteString("==================\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
