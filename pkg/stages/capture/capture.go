// Package capture implements the stage that screenshots the composed HTML.
package capture

import (
	"bytes"
	"context"
	"fmt"

	"github.com/user/commitstory/pkg/pipeline"
	"github.com/user/commitstory/pkg/ports"
)

// Stage renders HTML in a headless browser and normalizes the resulting PNG.
type Stage struct {
	screenshotter ports.Screenshotter
	renderer      ports.Renderer
	sink          ports.DebugSink
	logger        ports.Logger
}

// NewStage creates a new capture stage.
func NewStage(screenshotter ports.Screenshotter, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		screenshotter: screenshotter,
		renderer:      renderer,
		sink:          sink,
		logger:        logger.WithComponent("capture"),
	}
}

// Execute captures the HTML and guarantees the PNG matches the viewport size.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptureInput) (pipeline.CaptureResult, error) {
	result := pipeline.CaptureResult{}

	raw, err := s.screenshotter.Capture(ctx, input.HTML, ports.CaptureOptions{
		Width:      input.Width,
		Height:     input.Height,
		Timeout:    input.Timeout,
		ChromePath: input.ChromePath,
	})
	if err != nil {
		return result, fmt.Errorf("capture screenshot: %w", err)
	}
	s.logger.Debug("Screenshot captured: %d bytes", len(raw))

	if s.sink.Enabled() {
		if err := s.sink.SaveScreenshot(raw); err != nil {
			s.logger.Warn("Failed to save debug screenshot: %s", err.Error())
		}
	}

	png, err := s.renderer.Normalize(raw, input.Width, input.Height)
	if err != nil {
		return result, fmt.Errorf("normalize screenshot: %w", err)
	}

	result.PNG = png
	result.Resized = !bytes.Equal(raw, png)
	if result.Resized {
		s.logger.Debug("Resized screenshot to %dx%d", input.Width, input.Height)
	}

	return result, nil
}

var _ pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult] = (*Stage)(nil)
