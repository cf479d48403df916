// =============================================================================
// atom.go - Atomフィードの組み立てと直列化
// =============================================================================
//
// このファイルはフィードメタデータと記事レコードから
// Atomフィードドキュメント（XML）を生成する処理を定義します。
//
// 【生成ポリシー】
//   - ソートは公開日時の降順・安定（同時刻は抽出順を保持）
//   - フル版と最新N件版は同じ読み取り専用入力から独立に組み立てる
//   - 整形出力（インデント付き）を試み、失敗時はコンパクト出力にフォールバック
//
// =============================================================================
package feed

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"time"
)

// atomNamespace はAtom 1.0の名前空間URI
const atomNamespace = "http://www.w3.org/2005/Atom"

// xmlDeclaration は出力先頭に付けるXML宣言
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// -----------------------------------------------------------------------------
// XML直列化用の構造体
// -----------------------------------------------------------------------------

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	XMLNS   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Author  atomAuthor  `xml:"author"`
	Link    atomLink    `xml:"link"`
	Updated string      `xml:"updated"`
	Entries []atomEntry `xml:"entry"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
}

type atomEntry struct {
	Title   string       `xml:"title"`
	ID      string       `xml:"id"`
	Link    atomLink     `xml:"link"`
	Summary string       `xml:"summary,omitempty"`
	Updated string       `xml:"updated"`
	Content *atomContent `xml:"content,omitempty"`
}

type atomContent struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

// -----------------------------------------------------------------------------
// 組み立て
// -----------------------------------------------------------------------------

// SortEntries は記事レコードを公開日時の降順（新しい順）にソートする
//
// 【重要】安定ソートを使用する。日付フォールバックでほぼ同一の
// タイムスタンプを持つレコード群は抽出順を保持する必要があるため。
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})
}

// Serialize はフィードをAtom XMLテキストに直列化する
//
// 【引数】
//   - meta:    フィードメタデータ（読み取りのみ、変更しない）
//   - entries: ソート済みの記事レコード
//   - limit:   出力する最大エントリ数（0以下で無制限）
//
// limitがエントリ数より大きい場合は全件出力する（エラーではない）。
// 整形出力に失敗した場合はコンパクト出力にフォールバックし、
// その判断を警告としてログに残す（生成済みドキュメントを失わない）。
func Serialize(meta FeedMeta, entries []Entry, limit int) (string, error) {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	f := atomFeed{
		XMLNS:   atomNamespace,
		Title:   meta.Title,
		ID:      meta.ID,
		Author:  atomAuthor{Name: meta.AuthorName},
		Link:    atomLink{Href: meta.ID, Rel: "self"},
		Updated: meta.Updated.Format(time.RFC3339),
		Entries: make([]atomEntry, 0, len(entries)),
	}

	for _, e := range entries {
		ae := atomEntry{
			Title:   e.Title,
			ID:      e.URL,
			Link:    atomLink{Href: e.URL},
			Summary: e.Summary,
			Updated: e.PublishedAt.Format(time.RFC3339),
		}
		if e.ContentHTML != "" {
			ae.Content = &atomContent{Type: "html", Text: e.ContentHTML}
		}
		f.Entries = append(f.Entries, ae)
	}

	b, err := xml.MarshalIndent(&f, "", "  ")
	if err != nil {
		Warnf("pretty-printing feed failed, falling back to compact output: %v", err)
		b, err = xml.Marshal(&f)
		if err != nil {
			return "", fmt.Errorf("serializing feed: %w", err)
		}
	}

	return xmlDeclaration + string(b) + "\n", nil
}

// WriteFeed はフィードを直列化して指定パスに保存する
//
// フル版と最新N件版の書き込みは互いに独立しており、
// 片方の失敗がもう片方の書き込みを妨げてはならない（呼び出し側で両方試行する）。
func WriteFeed(path string, meta FeedMeta, entries []Entry, limit int) error {
	out, err := Serialize(meta, entries, limit)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
