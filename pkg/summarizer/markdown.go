package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Commit Story Summary": "コミットストーリー サマリー",
		"Commit":               "コミット",
		"Subject":              "件名",
		"Short SHA":            "短縮SHA",
		"Full SHA":             "完全なSHA",
		"Changes":              "変更",
		"Files Changed":        "変更ファイル数",
		"Lines Added":          "追加行数",
		"Lines Deleted":        "削除行数",
		"Output":               "出力先",
		"Path":                 "パス",
		"Image Size":           "画像サイズ",
		"File Size":            "ファイルサイズ",
		"Engine":               "エンジン",
		"Body Format":          "本文形式",
		"Rescaled":             "リサイズ",
		"Yes":                  "はい",
		"No":                   "いいえ",
		"Generated at":         "生成日時",
		"Item":                 "項目",
		"Value":                "値",
	})
}

// Formatter turns a Summary into the text written by Writer.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc lets a plain function act as a Formatter.
type FormatFunc func(summary *Summary) string

// Format calls f.
func (f FormatFunc) Format(summary *Summary) string { return f(summary) }

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator replaces the label translator (default: l10n.T).
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{translate: l10n.T}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Commit Story Summary"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Commit"))
	f.tableHeader(&sb)
	f.row(&sb, t("Subject"), escapeCell(s.Commit.Subject))
	f.row(&sb, t("Short SHA"), "`"+s.Commit.ShortSHA+"`")
	f.row(&sb, t("Full SHA"), "`"+s.Commit.FullSHA+"`")
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Changes"))
	f.tableHeader(&sb)
	f.row(&sb, t("Files Changed"), s.Stats.FilesChanged)
	f.row(&sb, t("Lines Added"), "+"+s.Stats.LinesAdded)
	f.row(&sb, t("Lines Deleted"), "-"+s.Stats.LinesDeleted)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Output"))
	f.tableHeader(&sb)
	f.row(&sb, t("Path"), "`"+s.Output.Path+"`")
	f.row(&sb, t("Image Size"), fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height))
	if s.Output.FileSize > 0 {
		f.row(&sb, t("File Size"), formatBytes(s.Output.FileSize))
	}
	if s.Output.Engine != "" {
		f.row(&sb, t("Engine"), s.Output.Engine)
	}
	if s.Output.BodyFormat != "" {
		f.row(&sb, t("Body Format"), s.Output.BodyFormat)
	}
	resized := t("No")
	if s.Output.Resized {
		resized = t("Yes")
	}
	f.row(&sb, t("Rescaled"), resized)
	sb.WriteString("\n")

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "%s: %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&sb, " (commitstory %s)", f.version)
	}
	sb.WriteString("\n")

	return sb.String()
}

func (f *MarkdownFormatter) tableHeader(sb *strings.Builder) {
	fmt.Fprintf(sb, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	sb.WriteString("|---|---|\n")
}

func (f *MarkdownFormatter) row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "| %s | %s |\n", label, value)
}

// escapeCell keeps user text from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
