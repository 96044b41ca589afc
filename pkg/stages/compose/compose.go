// Package compose implements the stage that turns commit metadata into the
// filled HTML template.
package compose

import (
	"context"
	"fmt"

	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/format"
	"github.com/user/commitstory/pkg/pipeline"
	"github.com/user/commitstory/pkg/placeholder"
	"github.com/user/commitstory/pkg/ports"
)

// Stage formats the commit body and substitutes template placeholders.
type Stage struct {
	formatter  format.Formatter
	formatName string
	logger     ports.Logger
}

// NewStage creates a compose stage. formatName is used for logging only.
func NewStage(formatter format.Formatter, formatName string, logger ports.Logger) *Stage {
	return &Stage{
		formatter:  formatter,
		formatName: formatName,
		logger:     logger.WithComponent("compose"),
	}
}

// Execute builds the render context and fills the template.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ComposeResult{}, err
	}

	s.logger.Debug("Formatting commit body (%s)", s.formatName)
	rc, err := commit.NewRenderContext(input.Metadata, s.formatter)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("build render context: %w", err)
	}

	s.logger.Debug("Injecting data into template")
	html := placeholder.Render(input.Template, placeholder.Values(rc))

	return pipeline.ComposeResult{
		Context: rc,
		HTML:    html,
	}, nil
}

var _ pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult] = (*Stage)(nil)
