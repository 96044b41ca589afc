package ports

import (
	"context"
	"encoding/base64"
	"time"
)

// CaptureOptions configures a single HTML screenshot.
type CaptureOptions struct {
	Width      int           // Viewport and clip width in CSS pixels
	Height     int           // Viewport and clip height in CSS pixels
	Timeout    time.Duration // Upper bound for launch, navigation and network idle
	ChromePath string        // Explicit browser binary; empty means auto-detect
}

// Screenshotter renders an HTML document in a headless browser and returns
// a PNG clipped to the viewport. Implementations launch and release their
// own browser within a single call.
type Screenshotter interface {
	Capture(ctx context.Context, html string, opts CaptureOptions) ([]byte, error)
}

// HTMLDataURL encodes an HTML document as a data URL so it can be loaded
// without a server round trip.
func HTMLDataURL(html string) string {
	return "data:text/html;charset=UTF-8;base64," + base64.StdEncoding.EncodeToString([]byte(html))
}
