package ports

// DebugSink receives intermediate artifacts of a run for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveHTML saves the rendered template.
	SaveHTML(html string) error

	// SaveScreenshot saves the PNG as returned by the browser, before normalization.
	SaveScreenshot(data []byte) error
}
