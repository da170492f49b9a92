package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a survey email template: an HTML body with optional YAML
// frontmatter. Frontmatter keys are free-form; Subject is lifted out.
type Template struct {
	Metadata map[string]any
	Subject  string
	Body     string
}

// ParseTemplate splits template content into frontmatter metadata and HTML body.
// Content without a leading "---" line is treated as a bare HTML body.
func ParseTemplate(content []byte) (*Template, error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return &Template{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")
	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	frontmatter := afterFirst[:endIdx]
	body := skipNewline(afterFirst[endIdx+len(delimiter):])

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(frontmatter)) > 0 {
		if err := yaml.Unmarshal(frontmatter, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	tmpl := &Template{Metadata: metadata, Body: string(body)}
	if subject, ok := metadata["Subject"].(string); ok {
		tmpl.Subject = strings.TrimSpace(subject)
	}
	return tmpl, nil
}

// skipNewline drops one \n or \r\n following the closing delimiter.
func skipNewline(b []byte) []byte {
	if bytes.HasPrefix(b, []byte("\r\n")) {
		return b[2:]
	}
	if bytes.HasPrefix(b, []byte("\n")) {
		return b[1:]
	}
	return b
}
