package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer renders page descriptions to sanitized HTML.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewRenderer creates a Renderer using bluemonday's UGC policy.
func NewRenderer() *Renderer {
	return &Renderer{
		md:        goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// RenderMarkdown converts markdown to sanitized HTML.
func (r *Renderer) RenderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}
