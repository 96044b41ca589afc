// Package format converts commit message text into HTML fragments.
package format

import "strings"

// htmlEscaper replaces in a single pass, so the ampersands of entities it
// produces are never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, `\"`,
	"'", "&#039;",
)

// EscapeHTML makes text safe to embed as HTML text content.
//
// Double quotes become a backslash-quote pair rather than an entity. Cards
// rendered by earlier versions depend on this, so it is kept as is.
// EscapeHTML is single pass: escaping its output again escapes the
// ampersands of the entities it produced.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes v if it is a string and returns "" for anything else.
func EscapeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return EscapeHTML(s)
}
