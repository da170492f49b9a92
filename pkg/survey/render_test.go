package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	t.Parallel()

	tmpl := `<a href="{{SCRIPT_URL}}?customer={{CUSTOMER_ID}}&email={{CUSTOMER_EMAIL}}">{{CUSTOMER_ID}}</a>`
	r := Recipient{ID: "CUST-1", Email: "a@b.com"}

	msg := Render(tmpl, r, "https://survey.example.com/exec")

	require.Equal(t, `<a href="https://survey.example.com/exec?customer=CUST-1&email=a@b.com">CUST-1</a>`, msg.HTML)
	require.NotContains(t, msg.HTML, TokenScriptURL)
	require.NotContains(t, msg.HTML, TokenCustomerID)
	require.NotContains(t, msg.HTML, TokenCustomerEmail)
}

func TestRender_IDAndEmail(t *testing.T) {
	t.Parallel()

	msg := Render("<p>{{CUSTOMER_ID}}</p><p>{{CUSTOMER_EMAIL}}</p>", Recipient{ID: "CUST-1", Email: "a@b.com"}, "")

	require.Equal(t, "<p>CUST-1</p><p>a@b.com</p>", msg.HTML)
}

func TestRender_EachTokenOnce(t *testing.T) {
	t.Parallel()

	recipients := []Recipient{
		{ID: "CUST-12345", Email: "john@example.com"},
		{ID: "42", Email: "jane+nps@example.co.uk"},
		{ID: "{{id}}", Email: "weird@example.com"},
		{ID: "", Email: ""},
	}
	tmpl := "A " + TokenScriptURL + " B " + TokenCustomerID + " C " + TokenCustomerEmail

	for _, r := range recipients {
		msg := Render(tmpl, r, "https://s.example.com")

		require.Equal(t, "A https://s.example.com B "+r.ID+" C "+r.Email, msg.HTML)
		for _, token := range []string{TokenScriptURL, TokenCustomerID, TokenCustomerEmail} {
			require.Zero(t, strings.Count(msg.HTML, token))
		}
	}
}

func TestRender_LeavesUnknownTokens(t *testing.T) {
	t.Parallel()

	msg := Render("Hi {{NAME}}, {{CUSTOMER_ID}}", Recipient{ID: "7"}, "u")

	require.Equal(t, "Hi {{NAME}}, 7", msg.HTML)
}

func TestRender_ValuesAreNotReexpanded(t *testing.T) {
	t.Parallel()

	// An ID that looks like another token must stay literal.
	msg := Render("{{CUSTOMER_ID}}", Recipient{ID: "{{CUSTOMER_EMAIL}}", Email: "x@y.z"}, "u")

	require.Equal(t, "{{CUSTOMER_EMAIL}}", msg.HTML)
}

func TestLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		want string
	}{
		{
			name: "plain base",
			base: "https://script.google.com/macros/s/abc/exec",
			want: "https://script.google.com/macros/s/abc/exec?customer=CUST-1&email=a%40b.com",
		},
		{
			name: "existing query kept",
			base: "https://s.example.com/nps?src=mail",
			want: "https://s.example.com/nps?customer=CUST-1&email=a%40b.com&src=mail",
		},
		{
			name: "unparsable base",
			base: "http://[::1",
			want: "http://[::1?customer=CUST-1&email=a%40b.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Link(tt.base, Recipient{ID: "CUST-1", Email: "a@b.com"}))
		})
	}
}

func TestLongText(t *testing.T) {
	t.Parallel()

	msg := Message{Link: "https://s.example.com?customer=1"}

	named := LongText(Recipient{Name: "John Doe"}, msg)
	require.True(t, strings.HasPrefix(named, "Hi John Doe,\n"))
	require.Contains(t, named, "scale of 0-10:\nhttps://s.example.com?customer=1\n")

	anonymous := LongText(Recipient{}, msg)
	require.True(t, strings.HasPrefix(anonymous, "Hi there,\n"))
}

func TestShortText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Rate us: https://s.example.com?customer=1", ShortText(Recipient{}, Message{Link: "https://s.example.com?customer=1"}))
}
