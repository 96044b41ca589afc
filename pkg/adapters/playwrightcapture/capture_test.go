package playwrightcapture

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/user/commitstory/pkg/adapters/logger"
	"github.com/user/commitstory/pkg/ports"
)

func TestCapturer_Capture(t *testing.T) {
	if os.Getenv("COMMITSTORY_BROWSER_TESTS") != "1" {
		t.Skip("set COMMITSTORY_BROWSER_TESTS=1 to run browser tests")
	}

	html := `<html><body style="margin:0;background:#00ff00"><p>hello</p></body></html>`
	data, err := New(logger.NewNoop()).Capture(context.Background(), html, ports.CaptureOptions{
		Width:   320,
		Height:  480,
		Timeout: 60 * time.Second,
	})
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected PNG output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 480 {
		t.Errorf("expected 320x480, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCapturer_Capture_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(logger.NewNoop()).Capture(ctx, "<p>x</p>", ports.CaptureOptions{Width: 10, Height: 10})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
