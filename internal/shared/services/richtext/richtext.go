// Package richtext sanitizes stored HTML and renders markdown columns for display.
package richtext

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Formatter converts rich-text column values.
type Formatter interface {
	// SanitizeHTML strips markup that is unsafe to serve back to browsers.
	SanitizeHTML(content string) string
	// RenderMarkdown converts markdown to sanitized HTML.
	RenderMarkdown(source string) (string, error)
}

type formatter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewFormatter builds a Formatter with GFM markdown and a UGC sanitizing policy.
func NewFormatter() Formatter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre", "p")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.RequireNoFollowOnLinks(true)

	return &formatter{md: md, policy: policy}
}

func (f *formatter) SanitizeHTML(content string) string {
	return f.policy.Sanitize(content)
}

func (f *formatter) RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return f.policy.Sanitize(buf.String()), nil
}
