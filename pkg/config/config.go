// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/format"
	"github.com/user/commitstory/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Screenshot engines.
const (
	EngineChromedp   = "chromedp"
	EnginePlaywright = "playwright"
	EngineRod        = "rod"
)

// ErrUnknownEngine is returned by Validate for unsupported engine names.
var ErrUnknownEngine = errors.New("unknown engine")

// Config represents the ambient settings of a commitstory run. Commit
// metadata is resolved separately by ResolveMetadata.
type Config struct {
	// Template
	TemplatePath string `yaml:"template"`
	BodyFormat   string `yaml:"body_format"`

	// Output
	OutputPath string `yaml:"output"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`

	// Browser
	Engine     string `yaml:"engine"`
	TimeoutSec int    `yaml:"timeout_sec"`
	ChromePath string `yaml:"chrome_path"`

	// Git fallback for unset commit variables
	Repo string `yaml:"repo"`

	// Artifacts
	Debug       bool   `yaml:"debug"`
	DebugDir    string `yaml:"debug_dir"`
	SummaryPath string `yaml:"summary"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		BodyFormat: format.NamePlain,

		Width:  1080,
		Height: 1920,

		Engine:     EngineChromedp,
		TimeoutSec: 30,

		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Timeout returns the browser timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineChromedp, EnginePlaywright, EngineRod:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.Engine)
	}
	if _, err := format.New(c.BodyFormat); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Width, c.Height)
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout %d", c.TimeoutSec)
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(meta commit.Metadata) orchestrator.Config {
	return orchestrator.Config{
		Metadata:     meta,
		TemplatePath: c.TemplatePath,
		Width:        c.Width,
		Height:       c.Height,
		Timeout:      c.Timeout(),
		ChromePath:   c.ChromePath,
	}
}
