package rodcapture

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

func TestCapturer_BrowserBin(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		env       string
		systemBin string
		want      string
	}{
		{"explicit path wins", "/opt/chrome", "/env/chrome", "/usr/bin/chromium", "/opt/chrome"},
		{"CHROME_PATH before system", "", "/env/chrome", "/usr/bin/chromium", "/env/chrome"},
		{"system browser", "", "", "/usr/bin/chromium", "/usr/bin/chromium"},
		{"nothing found downloads", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(logger.NewNoop())
			c.getenv = func(key string) string {
				if key == "CHROME_PATH" {
					return tt.env
				}
				return ""
			}
			lookups := 0
			c.lookPath = func() (string, bool) {
				lookups++
				return tt.systemBin, tt.systemBin != ""
			}

			if got := c.browserBin(tt.explicit); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.explicit != "" || tt.env != "" {
				if lookups != 0 {
					t.Errorf("system lookup should be skipped, ran %d times", lookups)
				}
			}
		})
	}
}
