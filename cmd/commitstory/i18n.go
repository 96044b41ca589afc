// Package main provides localization for the commitstory CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Template": "テンプレート",
		"Output":   "出力先",
		"Commit":   "コミット",
		"Browser":  "ブラウザ設定",
		"Debug":    "デバッグ",
		"Logging":  "ログ",

		// Root command

		"Render a commit as a shareable story image": "コミットを共有用のストーリー画像として描画",

		// Flags
		"YAML configuration file": "YAML設定ファイル",

		"HTML template file (default: embedded template)": "HTMLテンプレートファイル（デフォルト: 組み込みテンプレート）",

		"Commit body format (plain, markdown)": "コミット本文の形式（plain, markdown）",

		"Output PNG path (overrides OUTPUT_PATH)": "出力PNGファイルパス（OUTPUT_PATHより優先）",

		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		"Read unset commit variables from HEAD of this repository": "未設定のコミット変数をこのリポジトリのHEADから読み込む",

		"Screenshot engine (chromedp, playwright, rod)": "スクリーンショットエンジン（chromedp, playwright, rod）",

		"Browser timeout in seconds": "ブラウザのタイムアウト（秒）",

		"Path to Chrome executable (falls back to CHROME_PATH env, then system default)": "Chrome実行ファイルのパス（未指定時はCHROME_PATH環境変数、次にシステムデフォルト）",

		"Enable debug output":                  "デバッグ出力を有効化",
		"Directory for debug output":           "デバッグ出力先ディレクトリ",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",
	})
}
