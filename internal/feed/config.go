// =============================================================================
// config.go - パイプライン設定
// =============================================================================
//
// このファイルはCLIフラグの解析と設定管理を行います。
//
// 【設定グループ】
//   - InputConfig:  入力ソース設定
//   - OutputConfig: フィード出力設定
//   - NotionConfig: Notionクリップ設定
//
// =============================================================================
package feed

import "flag"

// PipelineConfig はパイプラインの全設定を保持する
type PipelineConfig struct {
	Input  InputConfig
	Output OutputConfig
	Notion NotionConfig
}

// InputConfig は入力ソースに関する設定
type InputConfig struct {
	// URL は変換対象のページ（http/https URL または file://パス）
	URL string
}

// OutputConfig はフィード出力に関する設定
type OutputConfig struct {
	// FullFile は全エントリ版フィードの出力パス
	FullFile string

	// RecentFile は最新N件版フィードの出力パス
	RecentFile string

	// RecentLimit は最新版に含めるエントリ数
	RecentLimit int

	// SaveEntries が指定された場合、抽出結果をJSONでダンプする（診断用）
	SaveEntries string

	// Verify がtrueの場合、書き込んだフィードを再パースして検証する
	Verify bool
}

// NotionConfig はNotionクリップに関する設定
type NotionConfig struct {
	// Clip がtrueの場合、最新エントリをNotionデータベースに保存
	Clip bool

	// PageID は新規データベース作成時の親ページID
	PageID string

	// DatabaseID は既存のデータベースID
	DatabaseID string
}

// ParseFlags はCLIフラグを解析してPipelineConfigを返す
//
// 位置引数の1つ目を変換対象URLとして受け取る。
func ParseFlags() *PipelineConfig {
	cfg := &PipelineConfig{}

	// Output flags
	flag.StringVar(&cfg.Output.FullFile, "out", "atom.xml", "output path for the full feed")
	flag.StringVar(&cfg.Output.RecentFile, "recentOut", "atom-recent-20.xml", "output path for the recent-entries feed")
	flag.IntVar(&cfg.Output.RecentLimit, "recentLimit", 20, "number of entries in the recent feed")
	flag.StringVar(&cfg.Output.SaveEntries, "saveEntries", "", "optional: dump extracted entries as JSON to this path")
	flag.BoolVar(&cfg.Output.Verify, "verify", false, "re-parse written feeds and check entry counts")

	// Notion flags
	flag.BoolVar(&cfg.Notion.Clip, "notionClip", false, "clip recent entries to Notion database")
	flag.StringVar(&cfg.Notion.PageID, "notionPageID", "", "parent page ID for creating new Notion database (required for new DB)")
	flag.StringVar(&cfg.Notion.DatabaseID, "notionDatabaseID", "", "existing Notion database ID (optional, will create new if empty)")

	flag.Parse()
	cfg.Input.URL = flag.Arg(0)
	return cfg
}
