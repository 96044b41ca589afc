package mocks

import (
	"sync"

	"github.com/user/commitstory/pkg/ports"
)

// DebugSink records everything it is given.
type DebugSink struct {
	mu      sync.RWMutex
	enabled bool

	HTML       string
	Screenshot []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveHTML(html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HTML = html
	return nil
}

func (m *DebugSink) SaveScreenshot(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Screenshot = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
