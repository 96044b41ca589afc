// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"path/filepath"

	"github.com/user/commitstory/pkg/ports"
)

// File names written inside the debug directory.
const (
	HTMLFile       = "rendered.html"
	ScreenshotFile = "screenshot.png"
)

// Sink saves debug output to files under baseDir.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveHTML saves the rendered template.
func (s *Sink) SaveHTML(html string) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, HTMLFile), []byte(html))
}

// SaveScreenshot saves the browser's PNG before normalization.
func (s *Sink) SaveScreenshot(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, ScreenshotFile), data)
}

var _ ports.DebugSink = (*Sink)(nil)
