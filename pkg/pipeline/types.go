package pipeline

import (
	"time"

	"github.com/user/commitstory/pkg/commit"
)

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains the raw commit data and the template to fill.
type ComposeInput struct {
	Metadata commit.Metadata
	Template string
}

// ComposeResult contains the render context and the filled template.
type ComposeResult struct {
	Context commit.RenderContext
	HTML    string
}

// =============================================================================
// Capture Stage Types
// =============================================================================

// CaptureInput contains parameters for rendering HTML to PNG.
type CaptureInput struct {
	HTML       string
	Width      int           // Viewport width (default: 1080)
	Height     int           // Viewport height (default: 1920)
	Timeout    time.Duration // Browser timeout (default: 30s)
	ChromePath string
}

// CaptureResult contains the final PNG.
type CaptureResult struct {
	PNG     []byte
	Resized bool // true when the browser output had to be rescaled
}
