package response

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_NPS(t *testing.T) {
	t.Parallel()

	var r Report
	for _, score := range []int{10, 9, 9, 8, 7, 3, 0, 6, 10, 9} {
		r.Add(CategoryOf(score))
	}

	assert.Equal(t, 10, r.Total())
	assert.Equal(t, 5, r.Promoters)
	assert.Equal(t, 2, r.Passives)
	assert.Equal(t, 3, r.Detractors)
	assert.InDelta(t, 50.0, r.Percent(r.Promoters), 0.001)
	assert.InDelta(t, 20.0, r.NPS(), 0.001)
}

func TestReport_AllDetractors(t *testing.T) {
	t.Parallel()

	r := Report{Detractors: 4}
	assert.InDelta(t, -100.0, r.NPS(), 0.001)
}

func TestReport_Empty(t *testing.T) {
	t.Parallel()

	var r Report
	assert.Zero(t, r.NPS())
	assert.Zero(t, r.Percent(0))

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf))
	assert.Equal(t, "No responses yet!\n", buf.String())
}

func TestReport_WriteSummary(t *testing.T) {
	t.Parallel()

	r := Report{Promoters: 2, Passives: 1, Detractors: 1}

	var buf bytes.Buffer
	require.NoError(t, r.WriteSummary(&buf))
	assert.Equal(t, `=== NPS REPORT ===
Total Responses: 4
Promoters (9-10): 2 (50.0%)
Passives (7-8): 1 (25.0%)
Detractors (0-6): 1 (25.0%)
NPS Score: 25.0
==================
`, buf.String())
}
