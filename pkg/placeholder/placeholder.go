// Package placeholder fills {{NAME}} placeholders in the story template.
package placeholder

import (
	"strings"

	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/format"
)

// Placeholder names understood by the commit story template.
const (
	CommitSubject      = "COMMIT_SUBJECT"
	CommitBodyHTML     = "COMMIT_BODY_HTML"
	CommitSHAShort     = "COMMIT_SHA_SHORT"
	FilesChanged       = "FILES_CHANGED"
	FilesChangedPlural = "FILES_CHANGED_PLURAL"
	LinesAdded         = "LINES_ADDED"
	LinesDeleted       = "LINES_DELETED"
)

// Token wraps a placeholder name in its template delimiters.
func Token(name string) string {
	return "{{" + name + "}}"
}

// Plural returns "" when count is exactly "1" and "s" otherwise.
func Plural(count string) string {
	if count == "1" {
		return ""
	}
	return "s"
}

// Values returns the placeholder values for rc. Text values are escaped;
// the body is inserted as formatted HTML.
func Values(rc commit.RenderContext) map[string]string {
	return map[string]string{
		CommitSubject:      format.EscapeHTML(rc.Subject),
		CommitBodyHTML:     rc.BodyHTML,
		CommitSHAShort:     format.EscapeHTML(rc.ShortSHA),
		FilesChanged:       format.EscapeHTML(rc.FilesChanged),
		FilesChangedPlural: Plural(rc.FilesChanged),
		LinesAdded:         format.EscapeHTML(rc.LinesAdded),
		LinesDeleted:       format.EscapeHTML(rc.LinesDeleted),
	}
}

// Render replaces every occurrence of each {{NAME}} in tmpl with
// values[NAME]. Unknown placeholders are left as they are. Replacement is a
// single pass, so inserted values are never scanned for placeholders.
func Render(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, Token(name), value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
