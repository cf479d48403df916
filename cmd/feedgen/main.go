// =============================================================================
// main.go - Atom Relay のエントリーポイント
// =============================================================================
//
// このプログラムは、ブログ一覧ページのHTMLをAtomフィードに変換するCLIツールです。
//
// 【処理フロー】
//   1. 設定読み込み（.env + CLIフラグ）
//   2. ページ取得（http/https または file://）
//   3. 記事レコード抽出（goquery）
//   4. 公開日時の降順ソート（安定）
//   5. フィード書き込み（atom.xml + atom-recent-20.xml、互いに独立）
//   6. オプション: 検証（gofeed）、Notionクリップ
//
// 【CLIフラグ一覧】
//   -out            全エントリ版の出力パス（デフォルト: atom.xml）
//   -recentOut      最新N件版の出力パス（デフォルト: atom-recent-20.xml）
//   -recentLimit    最新版のエントリ数（デフォルト: 20）
//   -saveEntries    抽出結果のJSONダンプパス（診断用）
//   -verify         書き込んだフィードを再パースして検証
//   -notionClip     最新エントリをNotionデータベースに保存
//
// 使用例:
//   ./feedgen https://www.anthropic.com/engineering
//   ./feedgen -recentLimit=10 -verify file://testdata/listing.html
//
// =============================================================================
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv" // .env ファイル読み込み

	"atom-relay/internal/feed"
)

func main() {
	// .env ファイルから環境変数を読み込み
	// ファイルが存在しない場合はログを出力するが、処理は続行する
	if err := godotenv.Load(); err != nil {
		feed.Warnf(".env file not loaded: %v (using environment variables only)", err)
	}

	cfg := feed.ParseFlags()
	if cfg.Input.URL == "" {
		feed.Errorf("usage: feedgen [flags] <url | file://path/to/listing.html>")
		os.Exit(1)
	}

	// --- 1) Fetch and parse the listing page ---
	doc, baseURL, err := feed.FetchDoc(cfg.Input.URL, feed.DefaultSourceConfig())
	if err != nil {
		feed.Errorf("fetching %s: %v", cfg.Input.URL, err)
		os.Exit(1)
	}

	// --- 2) Extract entries and sort most recent first ---
	meta, entries := feed.Extract(doc, baseURL)
	feed.Infof("extracted %d entries from %s", len(entries), baseURL)

	feed.SortEntries(entries)

	if cfg.Output.SaveEntries != "" {
		if err := feed.WriteJSONFile(cfg.Output.SaveEntries, entries); err != nil {
			feed.Warnf("writing entries dump: %v", err)
		}
	}

	// --- 3) Write both feeds (each write is independent) ---
	targets := []struct {
		path  string
		limit int
	}{
		{cfg.Output.FullFile, 0},
		{cfg.Output.RecentFile, cfg.Output.RecentLimit},
	}

	failures := 0
	for _, t := range targets {
		if err := feed.WriteFeed(t.path, meta, entries, t.limit); err != nil {
			feed.Errorf("%v", err)
			failures++
			continue
		}
		feed.Infof("saved feed to %s", t.path)

		if cfg.Output.Verify {
			want := len(entries)
			if t.limit > 0 && want > t.limit {
				want = t.limit
			}
			got, err := feed.VerifyFeedFile(t.path)
			if err != nil {
				feed.Warnf("verify: %v", err)
			} else if got != want {
				feed.Warnf("verify: %s has %d entries, expected %d", t.path, got, want)
			} else {
				feed.Infof("verified %s (%d entries)", t.path, got)
			}
		}
	}

	// --- 4) Clip to Notion (if enabled) ---
	if cfg.Notion.Clip {
		clipRecentToNotion(cfg, entries)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// clipRecentToNotion は最新エントリをNotionデータベースに保存する
func clipRecentToNotion(cfg *feed.PipelineConfig, entries []feed.Entry) {
	notionToken := os.Getenv("NOTION_TOKEN")
	if notionToken == "" {
		feed.Errorf("NOTION_TOKEN environment variable is required for Notion integration")
		return
	}

	clipper, err := feed.NewNotionClipper(notionToken, cfg.Notion.DatabaseID)
	if err != nil {
		feed.Errorf("creating Notion clipper: %v", err)
		return
	}

	ctx := context.Background()

	// Create database if needed
	if cfg.Notion.DatabaseID == "" {
		if cfg.Notion.PageID == "" {
			feed.Errorf("-notionPageID is required when creating a new Notion database")
			return
		}
		dbID, err := clipper.CreateDatabase(ctx, cfg.Notion.PageID)
		if err != nil {
			feed.Errorf("creating Notion database: %v", err)
			return
		}
		feed.Infof("Notion database created: %s", dbID)
	}

	recent := entries
	if cfg.Output.RecentLimit > 0 && len(recent) > cfg.Output.RecentLimit {
		recent = recent[:cfg.Output.RecentLimit]
	}

	clipped := clipper.ClipEntries(ctx, recent)
	feed.Infof("clipped %d/%d entries to Notion", clipped, len(recent))
}
