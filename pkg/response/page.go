package response

import (
	"context"
	"html/template"
	"io"
)

// Page renders an HTML document.
// Compatible with templ.Component.
type Page interface {
	Render(ctx context.Context, w io.Writer) error
}

const pageLayout = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;display:flex;justify-content:center;align-items:center;min-height:100vh;margin:0;background:linear-gradient(135deg,#ffe5e8 0%,#fff9fa 100%)}
.container{background:#fff;padding:60px 40px;border-radius:12px;box-shadow:0 10px 40px rgba(0,0,0,.2);text-align:center;max-width:500px}
h1{color:#333;font-size:28px;margin:0 0 20px 0}
p{color:#666;font-size:17px;line-height:1.6;margin:0}
.emoji{font-size:64px;margin-bottom:20px}
.score{display:inline-block;background:#e0001a;color:#fff;padding:8px 16px;border-radius:20px;font-weight:600;margin:20px 0}
</style>
</head>
<body><div class="container">{{template "body" .}}</div></body>
</html>
{{end}}`

var (
	invalidLinkTmpl = template.Must(template.Must(template.New("invalid").Parse(pageLayout)).Parse(
		`{{define "body"}}<h1>Invalid Link</h1><p>Please use the link from your email.</p>{{end}}`))

	thankYouTmpl = template.Must(template.Must(template.New("thanks").Parse(pageLayout)).Parse(
		`{{define "body"}}<div class="emoji">{{.Emoji}}</div>
<h1>Thank you for your feedback!</h1>
<div class="score">You rated us: {{.Score}}/10</div>
<p>We really appreciate you taking the time to share your experience with us.</p>
{{- if eq .Category "Detractor"}}
<p style="margin-top:20px">We're sorry we didn't meet your expectations. We'll work hard to improve!</p>
{{- else if eq .Category "Promoter"}}
<p style="margin-top:20px">We're thrilled you had a great experience!</p>
{{- end}}{{end}}`))
)

type templatePage struct {
	tmpl *template.Template
	data any
}

func (p templatePage) Render(_ context.Context, w io.Writer) error {
	return p.tmpl.ExecuteTemplate(w, "layout", p.data)
}

// InvalidLinkPage is shown when a survey link lacks its parameters.
func InvalidLinkPage() Page {
	return templatePage{tmpl: invalidLinkTmpl, data: struct{ Title string }{"Invalid Link"}}
}

// ThankYouPage acknowledges a recorded score.
func ThankYouPage(resp Response) Page {
	return templatePage{tmpl: thankYouTmpl, data: struct {
		Title    string
		Emoji    string
		Category string
		Score    int
	}{
		Title:    "Thank You!",
		Emoji:    emojiFor(resp.Score),
		Category: string(resp.Category),
		Score:    resp.Score,
	}}
}

func emojiFor(score int) string {
	switch {
	case score >= 9:
		return "\U0001F31F"
	case score >= 7:
		return "\U0001F60A"
	case score >= 5:
		return "\U0001F610"
	default:
		return "\U0001F61E"
	}
}
