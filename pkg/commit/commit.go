// Package commit holds the per-run commit data injected into the story card.
package commit

import (
	"fmt"
	"strings"

	"github.com/user/commitstory/pkg/format"
)

// ShortSHALength is the number of characters kept for the short SHA.
const ShortSHALength = 7

// Metadata contains the raw commit values as read from the environment or
// a repository. Counts are kept as strings so they pass through unchanged.
type Metadata struct {
	Message      string
	SHA          string
	FilesChanged string
	LinesAdded   string
	LinesDeleted string
	OutputPath   string
}

// RenderContext is the formatted view of Metadata used to fill the template.
// It is built once per run and not modified afterwards.
type RenderContext struct {
	Subject      string
	Body         string // raw body, subject line removed
	BodyHTML     string
	FullSHA      string
	ShortSHA     string
	FilesChanged string
	LinesAdded   string
	LinesDeleted string
	OutputPath   string
}

// SplitMessage splits a commit message into its subject (first line of the
// trimmed message) and body (remaining lines).
func SplitMessage(message string) (subject, body string) {
	lines := strings.Split(format.Trim(message), "\n")
	return lines[0], strings.Join(lines[1:], "\n")
}

// ShortSHA returns the first ShortSHALength characters of sha.
func ShortSHA(sha string) string {
	r := []rune(sha)
	if len(r) <= ShortSHALength {
		return sha
	}
	return string(r[:ShortSHALength])
}

// NewRenderContext builds a RenderContext, formatting the body with f.
func NewRenderContext(m Metadata, f format.Formatter) (RenderContext, error) {
	subject, body := SplitMessage(m.Message)

	bodyHTML, err := f.Format(body)
	if err != nil {
		return RenderContext{}, fmt.Errorf("format body: %w", err)
	}

	return RenderContext{
		Subject:      subject,
		Body:         body,
		BodyHTML:     bodyHTML,
		FullSHA:      m.SHA,
		ShortSHA:     ShortSHA(m.SHA),
		FilesChanged: m.FilesChanged,
		LinesAdded:   m.LinesAdded,
		LinesDeleted: m.LinesDeleted,
		OutputPath:   m.OutputPath,
	}, nil
}
