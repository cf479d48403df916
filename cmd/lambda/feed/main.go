// =============================================================================
// Lambda: generate-feed
// =============================================================================
//
// ブログ一覧ページを取得し、Atomフィード（フル版 + 最新N件版）を生成する
// Lambda関数。生成したフィードはOUTPUT_DIR配下に書き込み、
// NOTION_TOKENが設定されていれば最新エントリをNotion DBにも保存する。
//
// 環境変数:
//   - PAGE_URL:           変換対象ページ (デフォルト: 本番一覧ページ)
//   - OUTPUT_DIR:         フィード出力先ディレクトリ (デフォルト: /tmp)
//   - RECENT_LIMIT:       最新版のエントリ数 (デフォルト: 20)
//   - NOTION_TOKEN:       Notion API Token (任意)
//   - NOTION_DATABASE_ID: NotionデータベースID (NOTION_TOKEN使用時は必須)
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"

	"atom-relay/internal/feed"
)

// LambdaConfig は環境変数から読み込む設定
type LambdaConfig struct {
	PageURL          string
	OutputDir        string
	RecentLimit      int
	NotionToken      string // Notionクリップ用（任意）
	NotionDatabaseID string // Notionクリップ用（任意）
}

// Response はLambdaレスポンス
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Extracted  int    `json:"extracted"`
	Written    int    `json:"written"`
	Clipped    int    `json:"clipped"`
}

// Handler はLambdaのメインハンドラー
func Handler(ctx context.Context, event interface{}) (Response, error) {
	log.Println("Starting generate-feed Lambda...")

	cfg := loadConfig()
	log.Printf("Config: pageURL=%s, outputDir=%s, recentLimit=%d", cfg.PageURL, cfg.OutputDir, cfg.RecentLimit)

	// 1. ページ取得と記事抽出
	doc, baseURL, err := feed.FetchDoc(cfg.PageURL, feed.DefaultSourceConfig())
	if err != nil {
		log.Printf("Error fetching page: %v", err)
		return Response{StatusCode: 500, Message: err.Error()}, err
	}

	meta, entries := feed.Extract(doc, baseURL)
	log.Printf("Extracted %d entries", len(entries))

	feed.SortEntries(entries)

	// 2. フィード書き込み（片方の失敗でもう片方を中断しない）
	targets := []struct {
		path  string
		limit int
	}{
		{filepath.Join(cfg.OutputDir, "atom.xml"), 0},
		{filepath.Join(cfg.OutputDir, fmt.Sprintf("atom-recent-%d.xml", cfg.RecentLimit)), cfg.RecentLimit},
	}

	written := 0
	var writeErr error
	for _, t := range targets {
		if err := feed.WriteFeed(t.path, meta, entries, t.limit); err != nil {
			log.Printf("Warning: %v", err)
			writeErr = err
			continue
		}
		written++
	}

	if written == 0 {
		return Response{StatusCode: 500, Message: writeErr.Error(), Extracted: len(entries)}, writeErr
	}

	// 3. Notionに保存（トークンが設定されている場合のみ）
	clipped := 0
	if cfg.NotionToken != "" {
		if cfg.NotionDatabaseID == "" {
			log.Println("Warning: NOTION_DATABASE_ID is required when NOTION_TOKEN is set, skipping clip")
		} else {
			clipper, err := feed.NewNotionClipper(cfg.NotionToken, cfg.NotionDatabaseID)
			if err != nil {
				log.Printf("Warning: creating Notion clipper: %v", err)
			} else {
				recent := entries
				if cfg.RecentLimit > 0 && len(recent) > cfg.RecentLimit {
					recent = recent[:cfg.RecentLimit]
				}
				clipped = clipper.ClipEntries(ctx, recent)
				log.Printf("Clipped %d entries to Notion", clipped)
			}
		}
	}

	return Response{
		StatusCode: 200,
		Message:    fmt.Sprintf("Generated %d feed file(s) from %d entries", written, len(entries)),
		Extracted:  len(entries),
		Written:    written,
		Clipped:    clipped,
	}, nil
}

// loadConfig は環境変数から設定を読み込む
func loadConfig() LambdaConfig {
	pageURL := os.Getenv("PAGE_URL")
	if pageURL == "" {
		pageURL = "https://www.anthropic.com/engineering"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "/tmp"
	}

	recentLimit := 20
	if rl := os.Getenv("RECENT_LIMIT"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			recentLimit = val
		}
	}

	return LambdaConfig{
		PageURL:          pageURL,
		OutputDir:        outputDir,
		RecentLimit:      recentLimit,
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
	}
}

func main() {
	lambda.Start(Handler)
}
