// =============================================================================
// notion.go - Notionクリップ出力
// =============================================================================
//
// このファイルは抽出した記事レコードをNotionデータベースに保存する
// オプション出力を定義します。jomei/notionapi ライブラリを使用します。
//
// 環境変数:
//   - NOTION_TOKEN: Notion Integration Token (必須)
//
// =============================================================================
package feed

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

// NotionClipper は記事レコードのNotion保存を担当する
type NotionClipper struct {
	client *notionapi.Client
	dbID   notionapi.DatabaseID
}

// NewNotionClipper はNotionクリッパーを生成する
func NewNotionClipper(token string, databaseID string) (*NotionClipper, error) {
	if token == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}

	nc := &NotionClipper{
		client: notionapi.NewClient(notionapi.Token(token)),
	}
	if databaseID != "" {
		nc.dbID = notionapi.DatabaseID(databaseID)
	}
	return nc, nil
}

// CreateDatabase は記事クリップ用のNotionデータベースを新規作成する
//
// 作成したデータベースIDを返す。以降のClipEntry呼び出しで使用される。
func (nc *NotionClipper) CreateDatabase(ctx context.Context, pageID string) (string, error) {
	if pageID == "" {
		return "", fmt.Errorf("NOTION_PAGE_ID is required to create a new database")
	}

	dbRequest := &notionapi.DatabaseCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(pageID),
		},
		Title: []notionapi.RichText{
			{
				Text: &notionapi.Text{
					Content: "Engineering Blog Entries",
				},
			},
		},
		Properties: notionapi.PropertyConfigs{
			"Title": notionapi.TitlePropertyConfig{
				Type: notionapi.PropertyConfigTypeTitle,
			},
			"URL": notionapi.URLPropertyConfig{
				Type: notionapi.PropertyConfigTypeURL,
			},
			"Summary": notionapi.RichTextPropertyConfig{
				Type: notionapi.PropertyConfigTypeRichText,
			},
			"Published": notionapi.DatePropertyConfig{
				Type: notionapi.PropertyConfigTypeDate,
			},
		},
	}

	db, err := nc.client.Database.Create(ctx, dbRequest)
	if err != nil {
		return "", fmt.Errorf("failed to create Notion database: %w", err)
	}

	nc.dbID = notionapi.DatabaseID(db.ID)
	return string(db.ID), nil
}

// ClipEntry は記事レコード1件をNotionデータベースに保存する
func (nc *NotionClipper) ClipEntry(ctx context.Context, e Entry) error {
	if nc.dbID == "" {
		return fmt.Errorf("database ID not set")
	}

	published := notionapi.Date(e.PublishedAt)

	properties := notionapi.Properties{
		"Title": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: e.Title,
					},
				},
			},
		},
		"Published": notionapi.DateProperty{
			Type: notionapi.PropertyTypeDate,
			Date: &notionapi.DateObject{
				Start: &published,
			},
		},
	}

	// URL property rejects empty strings, set only when a link was found
	if e.URL != "" {
		properties["URL"] = notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  e.URL,
		}
	}

	if e.Summary != "" {
		properties["Summary"] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: truncateText(e.Summary, 2000), // Notion limit
					},
				},
			},
		}
	}

	pageRequest := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: nc.dbID,
		},
		Properties: properties,
	}

	_, err := nc.client.Page.Create(ctx, pageRequest)
	if err != nil {
		return fmt.Errorf("failed to clip entry: %w", err)
	}
	return nil
}

// ClipEntries は複数の記事レコードを順に保存し、成功件数を返す
//
// 1件の失敗は警告として記録し、残りの保存は継続する。
func (nc *NotionClipper) ClipEntries(ctx context.Context, entries []Entry) int {
	clipped := 0
	for _, e := range entries {
		if err := nc.ClipEntry(ctx, e); err != nil {
			Warnf("failed to clip entry '%s': %v", e.Title, err)
			continue
		}
		clipped++
	}
	return clipped
}

// truncateText はテキストをmaxLen文字に切り詰める
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
