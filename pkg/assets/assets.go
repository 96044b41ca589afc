// Package assets embeds the default commit story template.
package assets

import _ "embed"

// DefaultTemplate is used when no template path is configured.
//
//go:embed commit-story-template.html
var DefaultTemplate string
