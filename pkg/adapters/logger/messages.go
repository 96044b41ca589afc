package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Rendering commit story for %s":   "%s のコミットストーリーを生成中",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Loading template %s":             "テンプレート %s を読み込み中",
		"Using embedded template":         "組み込みテンプレートを使用します",
		"Summary saved to %s":             "サマリーを %s に保存しました",

		// Environment
		"Loaded environment variables from %s": "%s から環境変数を読み込みました",

		"Neither .env nor .env.development found, relying on the process environment": ".env も .env.development も見つかりません。プロセスの環境変数を使用します",

		"Commit SHA: %s":      "コミットSHA: %s",
		"Commit message:\n%s": "コミットメッセージ:\n%s",
		"Files changed: %s":   "変更ファイル数: %s",
		"Lines added: %s":     "追加行数: %s",
		"Lines deleted: %s":   "削除行数: %s",
		"Output path: %s":     "出力パス: %s",
		"Reading HEAD of %s":  "%s の HEAD を読み込み中",

		// Compose stage
		"Formatting commit body (%s)":  "コミット本文を整形中 (%s)",
		"Injecting data into template": "テンプレートにデータを埋め込み中",

		// Capture stage
		"Launching browser (%s)":                 "ブラウザを起動中 (%s)",
		"Setting viewport %dx%d":                 "ビューポートを %dx%d に設定",
		"Loading HTML content":                   "HTMLコンテンツを読み込み中",
		"Taking screenshot":                      "スクリーンショットを撮影中",
		"Screenshot captured: %d bytes":          "スクリーンショット取得: %d バイト",
		"Resized screenshot to %dx%d":            "スクリーンショットを %dx%d にリサイズしました",
		"Closing browser":                        "ブラウザを閉じています",
		"Using browser %s":                       "ブラウザ %s を使用します",
		"No browser found, downloading Chromium": "ブラウザが見つからないため Chromium をダウンロードします",

		// Errors
		"Failed to read template: %s":         "テンプレートの読み込みに失敗しました: %s",
		"Failed to render template: %s":       "テンプレートの生成に失敗しました: %s",
		"Failed to capture screenshot: %s":    "スクリーンショットの取得に失敗しました: %s",
		"Failed to write output: %s":          "出力の書き込みに失敗しました: %s",
		"Failed to write summary: %s":         "サマリーの書き込みに失敗しました: %s",
		"Failed to save debug HTML: %s":       "デバッグHTMLの保存に失敗しました: %s",
		"Failed to save debug screenshot: %s": "デバッグスクリーンショットの保存に失敗しました: %s",
		"Failed to read git metadata: %s":     "gitメタデータの読み込みに失敗しました: %s",
		"Error generating image: %s":          "画像の生成中にエラーが発生しました: %s",
	})
}
