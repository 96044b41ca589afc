package format

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

// Markdown renders commit bodies written in Markdown with goldmark.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a Markdown formatter with GFM extensions and syntax
// highlighting. Raw HTML in the body is omitted from the output.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(HighlightStyle),
					// Inline styles: the template carries no chroma stylesheet.
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(false),
					),
				),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithXHTML(),
			),
		),
	}
}

// Format implements Formatter.
func (m *Markdown) Format(body string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
