package orchestrator_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/commitstory/pkg/adapters/chromecapture"
	"github.com/user/commitstory/pkg/adapters/filesink"
	"github.com/user/commitstory/pkg/adapters/ggrenderer"
	"github.com/user/commitstory/pkg/adapters/logger"
	"github.com/user/commitstory/pkg/adapters/osfilesystem"
	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/format"
	"github.com/user/commitstory/pkg/mocks"
	"github.com/user/commitstory/pkg/orchestrator"
	"github.com/user/commitstory/pkg/ports"
	"github.com/user/commitstory/pkg/stages/capture"
	"github.com/user/commitstory/pkg/stages/compose"
)

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func metadata(output string) commit.Metadata {
	return commit.Metadata{
		Message:      "Add commit stories\n- render card\n- save PNG",
		SHA:          "f00dfacecafebabe",
		FilesChanged: "4",
		LinesAdded:   "120",
		LinesDeleted: "8",
		OutputPath:   output,
	}
}

// TestPipeline_RealStages runs the real stages and adapters with a stubbed
// browser that returns a device-scaled capture.
func TestPipeline_RealStages(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewNoop()
	fs := osfilesystem.New()

	shooter := mocks.NewScreenshotter()
	shooter.CaptureFunc = func(ctx context.Context, html string, opts ports.CaptureOptions) ([]byte, error) {
		return solidPNG(t, opts.Width*2, opts.Height*2), nil
	}
	sink := filesink.New(filepath.Join(dir, "debug"), fs)

	orch := orchestrator.New(
		compose.NewStage(format.Plain, format.NamePlain, log),
		capture.NewStage(shooter, ggrenderer.New(), sink, log),
		fs,
		sink,
		log,
	)

	cfg := orchestrator.DefaultConfig()
	cfg.Width, cfg.Height = 108, 192
	cfg.Metadata = metadata(filepath.Join(dir, "out", "story.png"))

	result, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Resized {
		t.Error("expected the doubled capture to be rescaled")
	}

	data, err := os.ReadFile(cfg.Metadata.OutputPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 108 || b.Dy() != 192 {
		t.Errorf("expected 108x192, got %dx%d", b.Dx(), b.Dy())
	}

	html, err := os.ReadFile(filepath.Join(dir, "debug", filesink.HTMLFile))
	if err != nil {
		t.Fatalf("debug HTML not written: %v", err)
	}
	for _, want := range []string{"Add commit stories", "<li>render card</li>", "f00dfac", "120"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("expected rendered HTML to contain %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "debug", filesink.ScreenshotFile)); err != nil {
		t.Errorf("debug screenshot not written: %v", err)
	}
}

// TestPipeline_Chrome renders the embedded template in a real browser.
func TestPipeline_Chrome(t *testing.T) {
	if os.Getenv("COMMITSTORY_BROWSER_TESTS") != "1" {
		t.Skip("set COMMITSTORY_BROWSER_TESTS=1 to run browser tests")
	}
	if chromecapture.ResolveChromePath("") == "" {
		t.Skip("Chrome not installed")
	}

	dir := t.TempDir()
	log := logger.NewNoop()
	fs := osfilesystem.New()
	sink := mocks.NewDebugSink(false)

	orch := orchestrator.New(
		compose.NewStage(format.Plain, format.NamePlain, log),
		capture.NewStage(chromecapture.New(log), ggrenderer.New(), sink, log),
		fs,
		sink,
		log,
	)

	cfg := orchestrator.DefaultConfig()
	cfg.Timeout = 60 * time.Second
	cfg.Metadata = metadata(filepath.Join(dir, "commit-story.png"))

	if _, err := orch.Run(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfg.Metadata.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	cfgImg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfgImg.Width != 1080 || cfgImg.Height != 1920 {
		t.Errorf("expected 1080x1920, got %dx%d", cfgImg.Width, cfgImg.Height)
	}
}
