// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/commitstory/pkg/assets"
	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/pipeline"
	"github.com/user/commitstory/pkg/ports"
)

// Config contains all configuration for one run.
type Config struct {
	// Input
	Metadata     commit.Metadata
	TemplatePath string // empty means the embedded template

	// Viewport
	Width  int
	Height int

	// Browser
	Timeout    time.Duration
	ChromePath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Width:   1080,
		Height:  1920,
		Timeout: 30 * time.Second,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		composeStage: composeStage,
		captureStage: captureStage,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// Run executes the complete pipeline and writes the PNG to Metadata.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	// 1. Load template
	tmpl, err := o.loadTemplate(config.TemplatePath)
	if err != nil {
		o.logger.Error("Failed to read template: %s", err)
		return RunResult{}, fmt.Errorf("load template: %w", err)
	}

	// 2. Compose HTML
	composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
		Metadata: config.Metadata,
		Template: tmpl,
	})
	if err != nil {
		o.logger.Error("Failed to render template: %s", err)
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}

	if o.sink.Enabled() {
		if err := o.sink.SaveHTML(composed.HTML); err != nil {
			o.logger.Warn("Failed to save debug HTML: %s", err)
		}
	}

	// 3. Capture screenshot
	captured, err := o.captureStage.Execute(ctx, pipeline.CaptureInput{
		HTML:       composed.HTML,
		Width:      config.Width,
		Height:     config.Height,
		Timeout:    config.Timeout,
		ChromePath: config.ChromePath,
	})
	if err != nil {
		o.logger.Error("Failed to capture screenshot: %s", err)
		return RunResult{}, fmt.Errorf("capture stage: %w", err)
	}

	// 4. Write output file
	outputPath := config.Metadata.OutputPath
	if err := o.fs.WriteFile(outputPath, captured.PNG); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Info("Pipeline completed successfully")

	return RunResult{
		Context:    composed.Context,
		OutputPath: outputPath,
		Width:      config.Width,
		Height:     config.Height,
		FileSize:   int64(len(captured.PNG)),
		Resized:    captured.Resized,
	}, nil
}

func (o *Orchestrator) loadTemplate(path string) (string, error) {
	if path == "" {
		o.logger.Debug("Using embedded template")
		return assets.DefaultTemplate, nil
	}
	o.logger.Debug("Loading template %s", path)
	data, err := o.fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	Context    commit.RenderContext
	OutputPath string
	Width      int
	Height     int
	FileSize   int64
	Resized    bool
}
