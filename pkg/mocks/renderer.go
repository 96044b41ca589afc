package mocks

import "github.com/user/commitstory/pkg/ports"

// Renderer is a mock implementation of ports.Renderer. By default it
// returns its input unchanged.
type Renderer struct {
	NormalizeFunc func(data []byte, width, height int) ([]byte, error)

	NormalizeCalls []struct {
		Width  int
		Height int
	}
}

// NewRenderer creates a new mock Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (m *Renderer) Normalize(data []byte, width, height int) ([]byte, error) {
	m.NormalizeCalls = append(m.NormalizeCalls, struct {
		Width  int
		Height int
	}{width, height})
	if m.NormalizeFunc != nil {
		return m.NormalizeFunc(data, width, height)
	}
	return data, nil
}

var _ ports.Renderer = (*Renderer)(nil)
