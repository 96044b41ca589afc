package format

import (
	"errors"
	"fmt"
)

// Body format names accepted by New.
const (
	NamePlain    = "plain"
	NameMarkdown = "markdown"
)

// ErrUnknownBodyFormat is returned by New for unsupported format names.
var ErrUnknownBodyFormat = errors.New("unknown body format")

// Formatter converts a raw commit body into an HTML fragment.
type Formatter interface {
	Format(body string) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(body string) (string, error)

// Format implements Formatter.
func (f FormatFunc) Format(body string) (string, error) {
	return f(body)
}

// Plain is the line-based formatter implemented by Body.
var Plain Formatter = FormatFunc(func(body string) (string, error) {
	return Body(body), nil
})

// New returns the formatter registered under name. An empty name selects
// the plain formatter.
func New(name string) (Formatter, error) {
	switch name {
	case "", NamePlain:
		return Plain, nil
	case NameMarkdown:
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBodyFormat, name)
	}
}
