// Package nullsink provides a no-op debug sink implementation.
package nullsink

import "github.com/user/commitstory/pkg/ports"

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveHTML does nothing.
func (s *Sink) SaveHTML(html string) error {
	return nil
}

// SaveScreenshot does nothing.
func (s *Sink) SaveScreenshot(data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
