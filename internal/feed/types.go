// =============================================================================
// types.go - データ構造定義
// =============================================================================
//
// このファイルはAtom Relayシステム全体で使用するデータ構造（型）を定義します。
//
// 【このファイルで定義している型】
//   - FeedMeta: フィード全体のメタデータ
//   - Entry:    記事一覧ページから抽出した1記事分のレコード
//
// =============================================================================
package feed

import "time"

// -----------------------------------------------------------------------------
// FeedMeta - フィードメタデータ
// -----------------------------------------------------------------------------
//
// 生成するAtomフィードのルート要素に入るメタデータを表します。
// Extract()が一度だけ構築し、以降は変更されません。
//
type FeedMeta struct {
	Title      string    `json:"title"`      // フィードタイトル
	ID         string    `json:"id"`         // フィードID（ベースURL）
	AuthorName string    `json:"authorName"` // 著者名
	Updated    time.Time `json:"updated"`    // フィード生成時刻（UTC）
}

// -----------------------------------------------------------------------------
// Entry - 記事レコード
// -----------------------------------------------------------------------------
//
// 一覧ページ内で発見した記事カード1件分の正規化済みデータを表します。
//
// 【フィールドの不変条件】
//   Title:       常に非空（抽出失敗時は "Unknown Article"）
//   URL:         絶対URL（リンクが無い場合のみ空文字列）
//   PublishedAt: 常に設定される（日付が無い/壊れている場合は抽出時刻）
//   Summary:     要約ノードが無い場合は空文字列（＝不在）
//   ImageURL:    画像ノードのsrcが無い場合は空文字列（＝不在）
//   ImageAlt:    画像がある場合のみ意味を持つ（alt属性が無ければ空文字列）
//   ContentHTML: SummaryまたはImageURLがある場合のみ合成される（直接設定不可）
//
type Entry struct {
	Title       string    `json:"title"`                 // 記事タイトル
	URL         string    `json:"url"`                   // 記事URL（絶対）
	Summary     string    `json:"summary,omitempty"`     // 要約テキスト
	PublishedAt time.Time `json:"publishedAt"`           // 公開日時（正午UTCまたは抽出時刻）
	ImageURL    string    `json:"imageUrl,omitempty"`    // サムネイル画像URL
	ImageAlt    string    `json:"imageAlt,omitempty"`    // 画像のaltテキスト
	ContentHTML string    `json:"contentHtml,omitempty"` // 合成済みHTMLコンテンツ
}
