// Package main provides the CLI entry point for commitstory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/commitstory/pkg/adapters/chromecapture"
	"github.com/user/commitstory/pkg/adapters/filesink"
	"github.com/user/commitstory/pkg/adapters/ggrenderer"
	"github.com/user/commitstory/pkg/adapters/gitsource"
	"github.com/user/commitstory/pkg/adapters/logger"
	"github.com/user/commitstory/pkg/adapters/nullsink"
	"github.com/user/commitstory/pkg/adapters/osfilesystem"
	"github.com/user/commitstory/pkg/adapters/playwrightcapture"
	"github.com/user/commitstory/pkg/adapters/rodcapture"
	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/config"
	"github.com/user/commitstory/pkg/format"
	"github.com/user/commitstory/pkg/orchestrator"
	"github.com/user/commitstory/pkg/ports"
	"github.com/user/commitstory/pkg/stages/capture"
	"github.com/user/commitstory/pkg/stages/compose"
	"github.com/user/commitstory/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "commitstory",
		Usage:   l10n.T("Render a commit as a shareable story image"),
		Version: version,
		Flags:   flags(),
		Action:  run,
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   l10n.T("YAML configuration file"),
		},
		&cli.StringFlag{
			Name:     "template",
			Aliases:  []string{"t"},
			Usage:    l10n.T("HTML template file (default: embedded template)"),
			Category: l10n.T("Template"),
		},
		&cli.StringFlag{
			Name:     "body-format",
			Usage:    l10n.T("Commit body format (plain, markdown)"),
			Category: l10n.T("Template"),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output PNG path (overrides OUTPUT_PATH)"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Output execution summary to file (Markdown format)"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "repo",
			Usage:    l10n.T("Read unset commit variables from HEAD of this repository"),
			Category: l10n.T("Commit"),
		},
		&cli.StringFlag{
			Name:     "engine",
			Aliases:  []string{"e"},
			Usage:    l10n.T("Screenshot engine (chromedp, playwright, rod)"),
			Category: l10n.T("Browser"),
		},
		&cli.IntFlag{
			Name:     "timeout",
			Usage:    l10n.T("Browser timeout in seconds"),
			Category: l10n.T("Browser"),
		},
		&cli.StringFlag{
			Name:     "chrome-path",
			Usage:    l10n.T("Path to Chrome executable (falls back to CHROME_PATH env, then system default)"),
			Category: l10n.T("Browser"),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

func run(c *cli.Context) error {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	log := newLogger(c, cfg.LogLevel)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()

	loaded, err := config.LoadDotEnv(fs, ".")
	switch {
	case err != nil:
		return fail(log, err)
	case loaded == "":
		log.Warn("Neither .env nor .env.development found, relying on the process environment")
	default:
		log.Info("Loaded environment variables from %s", loaded)
	}

	cfg.ApplyEnv(os.LookupEnv)
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return fail(log, err)
	}

	var source ports.CommitSource
	if cfg.Repo != "" {
		log.Debug("Reading HEAD of %s", cfg.Repo)
		source = gitsource.New(cfg.Repo)
	}
	meta := resolveMetadata(ctx, cfg, source, os.LookupEnv, log)
	if c.IsSet("output") {
		meta.OutputPath = c.String("output")
	}
	logMetadata(log, meta)

	formatter, err := format.New(cfg.BodyFormat)
	if err != nil {
		return fail(log, err)
	}

	// Create adapters
	renderer := ggrenderer.New()
	shooter := screenshotterFor(cfg.Engine, log)

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fail(log, fmt.Errorf("create debug directory: %w", err))
		}
		sink = filesink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	composeStage := compose.NewStage(formatter, cfg.BodyFormat, log)
	captureStage := capture.NewStage(shooter, renderer, sink, log)

	orch := orchestrator.New(composeStage, captureStage, fs, sink, log)

	log.Info("Rendering commit story for %s", commit.ShortSHA(meta.SHA))

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(meta))
	if err != nil {
		// Stage failures are logged by the orchestrator.
		return cli.Exit("", 1)
	}

	log.Info("Output saved to %s", result.OutputPath)

	if cfg.SummaryPath != "" {
		if err := writeSummary(fs, cfg, result); err != nil {
			log.Error("Failed to write summary: %s", err)
			return cli.Exit("", 1)
		}
		log.Info("Summary saved to %s", cfg.SummaryPath)
	}

	return nil
}

// applyFlags overlays explicitly set flags on cfg.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("template") {
		cfg.TemplatePath = c.String("template")
	}
	if c.IsSet("body-format") {
		cfg.BodyFormat = c.String("body-format")
	}
	if c.IsSet("summary") {
		cfg.SummaryPath = c.String("summary")
	}
	if c.IsSet("repo") {
		cfg.Repo = c.String("repo")
	}
	if c.IsSet("engine") {
		cfg.Engine = c.String("engine")
	}
	if c.IsSet("timeout") {
		cfg.TimeoutSec = c.Int("timeout")
	}
	if c.IsSet("chrome-path") {
		cfg.ChromePath = c.String("chrome-path")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
}

// resolveMetadata layers defaults, the commit source (nil when no
// repository is configured) and the environment, in increasing priority.
func resolveMetadata(ctx context.Context, cfg config.Config, source ports.CommitSource, lookup config.LookupFunc, log ports.Logger) commit.Metadata {
	meta := cfg.BaseMetadata()
	if source != nil {
		info, err := source.HeadCommit(ctx)
		if err != nil {
			log.Warn("Failed to read git metadata: %s", err)
		} else {
			meta = config.MergeCommitInfo(meta, info)
		}
	}
	return config.MetadataFromEnv(lookup, meta)
}

func logMetadata(log ports.Logger, meta commit.Metadata) {
	log.Info("Commit SHA: %s", meta.SHA)
	log.Info("Commit message:\n%s", meta.Message)
	log.Info("Files changed: %s", meta.FilesChanged)
	log.Info("Lines added: %s", meta.LinesAdded)
	log.Info("Lines deleted: %s", meta.LinesDeleted)
	log.Info("Output path: %s", meta.OutputPath)
}

// newLogger writes to the app's streams. Colour is only used when they are
// the process's own stdout and stderr.
func newLogger(c *cli.Context, level string) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	if c.App.Writer == os.Stdout && c.App.ErrWriter == os.Stderr {
		return logger.NewConsole(ports.ParseLogLevel(level))
	}
	return logger.NewWriter(c.App.Writer, c.App.ErrWriter, ports.ParseLogLevel(level))
}

// screenshotterFor is replaced in tests to run without a browser.
var screenshotterFor = newScreenshotter

func newScreenshotter(engine string, log ports.Logger) ports.Screenshotter {
	switch engine {
	case config.EnginePlaywright:
		return playwrightcapture.New(log)
	case config.EngineRod:
		return rodcapture.New(log)
	default:
		return chromecapture.New(log)
	}
}

func writeSummary(fs ports.FileSystem, cfg config.Config, result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithCommit(result.Context.Subject, result.Context.ShortSHA, result.Context.FullSHA).
		WithStats(result.Context.FilesChanged, result.Context.LinesAdded, result.Context.LinesDeleted).
		WithOutput(summarizer.OutputInfo{
			Path:       result.OutputPath,
			Width:      result.Width,
			Height:     result.Height,
			Engine:     cfg.Engine,
			BodyFormat: cfg.BodyFormat,
			FileSize:   result.FileSize,
			Resized:    result.Resized,
		}).
		Build()

	w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(summarizer.WithVersion(version)), fs)
	return w.Write(cfg.SummaryPath, summary)
}

// fail logs a setup error once and ends the run with exit code 1.
func fail(log ports.Logger, err error) error {
	log.Error("Error generating image: %s", err)
	return cli.Exit("", 1)
}
