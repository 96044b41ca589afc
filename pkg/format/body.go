package format

import (
	"strings"
	"unicode"
)

const listMarker = "- "

// Body converts a raw multi-line commit body into HTML blocks.
//
// Consecutive lines whose trimmed form starts with "- " are grouped into a
// single <ul>. Every other line becomes a <p>, and blank lines become an
// empty paragraph used for spacing. Text is escaped with EscapeHTML.
func Body(raw string) string {
	return Lines(strings.Split(raw, "\n"))
}

// Lines formats already split lines. An empty slice yields "".
func Lines(lines []string) string {
	var b strings.Builder
	inList := false

	for _, line := range lines {
		trimmed := Trim(line)

		if strings.HasPrefix(trimmed, listMarker) {
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			b.WriteString("  <li>")
			b.WriteString(EscapeHTML(trimmed[len(listMarker):]))
			b.WriteString("</li>\n")
			continue
		}

		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
		if trimmed == "" {
			b.WriteString("<p>&nbsp;</p>\n")
		} else {
			b.WriteString("<p>")
			b.WriteString(EscapeHTML(trimmed))
			b.WriteString("</p>\n")
		}
	}

	if inList {
		b.WriteString("</ul>\n")
	}

	return b.String()
}

// Trim removes leading and trailing white space using the set browsers use
// for String.prototype.trim: U+FEFF is stripped, U+0085 is kept.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
