// =============================================================================
// extract.go - 記事一覧ページからの抽出ロジック
// =============================================================================
//
// このファイルはAnthropicエンジニアリングブログの一覧ページから
// 記事レコードを抽出する処理を定義します。
// goquery ライブラリを使用してHTML構造から記事情報を抽出します。
//
// 【抽出ポリシー】
//   - レコード形状とフィールドのセレクタは定数として定義（インラインにしない）
//   - フィールド抽出の失敗は致命的エラーにしない（デフォルト値/不在で表現）
//   - 記事カードが1件も見つからない場合も空スライスを返す（エラーではない）
//
// =============================================================================
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// フィードメタデータの固定値
const (
	FeedTitle  = "Anthropic Engineering Blog"
	FeedAuthor = "Anthropic"
)

// 記事カードのレコード形状とフィールドセレクタ
//
// 抽出ポリシーをデータとして分離しておくことで、
// セレクタ変更時にロジックへ手を入れずに済む。
const (
	articleSelector = "article.ArticleList_article__LIMds"
	titleSelector   = "h2.bold, h3.bold"
	linkSelector    = "a.ArticleList_cardLink__VWIzl"
	summarySelector = "p.ArticleList_summary__G96cV"
	dateSelector    = "div.ArticleList_date__2VTRg"
	imageSelector   = "img"
)

const (
	// unknownTitle はタイトルが抽出できなかった場合のフォールバック値
	unknownTitle = "Unknown Article"

	// dateLayout は一覧ページの日付表記（例: "Sep 29, 2025"）
	dateLayout = "Jan 2, 2006"
)

// Extract は一覧ページのHTMLドキュメントから記事レコードを抽出する
//
// 【引数】
//   - doc:     goqueryでパース済みのHTMLドキュメント
//   - baseURL: 相対リンクの解決に使用するベースURL（フィードIDにもなる）
//
// 【戻り値】
//   - フィードメタデータ（生成時刻は呼び出し時点のUTC）
//   - 発見順の記事レコード（0件でもエラーにしない）
func Extract(doc *goquery.Document, baseURL string) (FeedMeta, []Entry) {
	meta := FeedMeta{
		Title:      FeedTitle,
		ID:         baseURL,
		AuthorName: FeedAuthor,
		Updated:    time.Now().UTC(),
	}

	entries := []Entry{}
	doc.Find(articleSelector).Each(func(_ int, article *goquery.Selection) {
		entries = append(entries, extractEntry(article, baseURL))
	})

	return meta, entries
}

// extractEntry は記事カード1件からEntryを組み立てる
//
// 各フィールドは独立に抽出し、見つからないフィールドは
// デフォルト値または不在（空文字列）で埋める。
func extractEntry(article *goquery.Selection, baseURL string) Entry {
	var e Entry

	// Extract title (could be h2 or h3)
	e.Title = strings.TrimSpace(article.Find(titleSelector).First().Text())
	if e.Title == "" {
		e.Title = unknownTitle
	}

	// Extract URL (relative hrefs are resolved against the base URL)
	href, _ := article.Find(linkSelector).First().Attr("href")
	e.URL = resolveURL(baseURL, href)

	// Extract summary (may not exist for all articles)
	e.Summary = strings.TrimSpace(article.Find(summarySelector).First().Text())

	// Extract and normalize date
	dateText := strings.TrimSpace(article.Find(dateSelector).First().Text())
	e.PublishedAt = parseDate(dateText)

	// Extract image (counted present only when src is non-empty)
	img := article.Find(imageSelector).First()
	if src, ok := img.Attr("src"); ok && src != "" {
		e.ImageURL = src
		e.ImageAlt = img.AttrOr("alt", "")
	}

	e.ContentHTML = synthesizeContent(e.Summary, e.ImageURL, e.ImageAlt)

	return e
}

// parseDate は一覧ページの日付テキストをタイムスタンプに正規化する
//
// 【ポリシー】
//   - パース成功時: その日の正午UTC（日単位の順序だけが重要なため時刻は粗くてよい）
//   - 日付が無い/パースできない場合: 抽出時点の現在UTC時刻にフォールバックし、
//     警告を標準エラー出力に出す
//
// 同一実行内でフォールバックした複数レコードはほぼ同一のタイムスタンプを持ち、
// それらの間の順序は事実上抽出順になる（ソートは安定であること）。
func parseDate(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		Warnf("no date text found, defaulting to now")
		return time.Now().UTC()
	}

	t, err := time.Parse(dateLayout, text)
	if err != nil {
		Warnf("could not parse date %q, defaulting to now", text)
		return time.Now().UTC()
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// synthesizeContent は要約と画像情報からcontent用HTML断片を合成する
//
// 【合成規則】
//   - 画像あり: <p>要約</p><p><img ... /></p>（要約が無ければ画像段落のみ）
//   - 要約のみ: <p>要約</p>
//   - どちらも無し: 空文字列（content要素は出力されない）
//
// 【注意】要約とaltテキストはエスケープせずそのまま埋め込む。
// 断片全体はXML層で文字データとしてエスケープされる（元サイトのテキストに
// マークアップ記号が含まれるケースは出力互換性を優先してそのまま通す）。
func synthesizeContent(summary, imageURL, imageAlt string) string {
	var b strings.Builder
	if summary != "" {
		b.WriteString(fmt.Sprintf("<p>%s</p>", summary))
	}
	if imageURL != "" {
		b.WriteString(fmt.Sprintf(`<p><img src="%s" alt="%s" /></p>`, imageURL, imageAlt))
	}
	return b.String()
}
