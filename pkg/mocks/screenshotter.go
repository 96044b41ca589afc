package mocks

import (
	"context"

	"github.com/user/commitstory/pkg/ports"
)

// PNGSignature is the payload returned by the default Screenshotter.
var PNGSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// CaptureCall records one Capture invocation.
type CaptureCall struct {
	HTML    string
	Options ports.CaptureOptions
}

// Screenshotter is a mock implementation of ports.Screenshotter.
type Screenshotter struct {
	CaptureFunc func(ctx context.Context, html string, opts ports.CaptureOptions) ([]byte, error)

	Calls []CaptureCall
}

// NewScreenshotter creates a mock that returns PNGSignature.
func NewScreenshotter() *Screenshotter {
	return &Screenshotter{}
}

func (m *Screenshotter) Capture(ctx context.Context, html string, opts ports.CaptureOptions) ([]byte, error) {
	m.Calls = append(m.Calls, CaptureCall{HTML: html, Options: opts})
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx, html, opts)
	}
	return PNGSignature, nil
}

var _ ports.Screenshotter = (*Screenshotter)(nil)
