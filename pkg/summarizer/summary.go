// Package summarizer builds the Markdown report written alongside a commit story image.
package summarizer

import "time"

// Summary contains everything known about one run.
type Summary struct {
	GeneratedAt time.Time

	Commit CommitInfo
	Stats  StatsInfo
	Output OutputInfo
}

// CommitInfo identifies the rendered commit.
type CommitInfo struct {
	Subject  string
	ShortSHA string
	FullSHA  string
}

// StatsInfo holds the diff statistics exactly as they were injected into the template.
type StatsInfo struct {
	FilesChanged string
	LinesAdded   string
	LinesDeleted string
}

// OutputInfo describes the written image.
type OutputInfo struct {
	Path       string
	Width      int
	Height     int
	Engine     string
	BodyFormat string
	FileSize   int64
	Resized    bool
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithCommit sets the commit identity.
func (b *Builder) WithCommit(subject, shortSHA, fullSHA string) *Builder {
	b.summary.Commit = CommitInfo{
		Subject:  subject,
		ShortSHA: shortSHA,
		FullSHA:  fullSHA,
	}
	return b
}

// WithStats sets diff statistics.
func (b *Builder) WithStats(filesChanged, linesAdded, linesDeleted string) *Builder {
	b.summary.Stats = StatsInfo{
		FilesChanged: filesChanged,
		LinesAdded:   linesAdded,
		LinesDeleted: linesDeleted,
	}
	return b
}

// WithOutput sets output image information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
