package feed

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteFeedAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atom.xml")

	entries := []Entry{
		entryAt("one", time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)),
		entryAt("two", time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)),
		entryAt("three", time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)),
	}
	if err := WriteFeed(path, testMeta(), entries, 0); err != nil {
		t.Fatalf("WriteFeed: %v", err)
	}

	got, err := VerifyFeedFile(path)
	if err != nil {
		t.Fatalf("VerifyFeedFile: %v", err)
	}
	if got != 3 {
		t.Errorf("VerifyFeedFile = %d entries, want 3", got)
	}
}

func TestVerifyFeedFileMissing(t *testing.T) {
	if _, err := VerifyFeedFile(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestEndToEnd drives the whole pipeline over a generated 25-article listing:
// extract, sort, write both feeds, and read them back with a feed parser.
func TestEndToEnd(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	// emitted oldest-first so sorting has real work to do
	for i := 0; i < 25; i++ {
		day := base.AddDate(0, 0, i)
		fmt.Fprintf(&b, `
<article class="ArticleList_article__LIMds">
  <a class="ArticleList_cardLink__VWIzl" href="/engineering/post-%d">
    <h2 class="bold">Post %d</h2>
    <p class="ArticleList_summary__G96cV">Summary %d.</p>
    <div class="ArticleList_date__2VTRg">%s</div>
  </a>
</article>`, i, i, i, day.Format("Jan 2, 2006"))
	}
	b.WriteString("</body></html>")

	doc := parseFixture(t, b.String())
	meta, entries := Extract(doc, testBaseURL)
	if len(entries) != 25 {
		t.Fatalf("extracted %d entries, want 25", len(entries))
	}

	SortEntries(entries)

	dir := t.TempDir()
	fullPath := filepath.Join(dir, "atom.xml")
	recentPath := filepath.Join(dir, "atom-recent-20.xml")

	if err := WriteFeed(fullPath, meta, entries, 0); err != nil {
		t.Fatalf("WriteFeed(full): %v", err)
	}
	if err := WriteFeed(recentPath, meta, entries, 20); err != nil {
		t.Fatalf("WriteFeed(recent): %v", err)
	}

	if n, err := VerifyFeedFile(fullPath); err != nil || n != 25 {
		t.Errorf("full feed: %d entries, err=%v, want 25", n, err)
	}
	if n, err := VerifyFeedFile(recentPath); err != nil || n != 20 {
		t.Errorf("recent feed: %d entries, err=%v, want 20", n, err)
	}

	// full feed is in strict descending date order
	for i := 1; i < len(entries); i++ {
		if entries[i].PublishedAt.After(entries[i-1].PublishedAt) {
			t.Errorf("entries[%d] (%v) is newer than entries[%d] (%v)",
				i, entries[i].PublishedAt, i-1, entries[i-1].PublishedAt)
		}
	}
	if entries[0].Title != "Post 24" {
		t.Errorf("newest entry = %q, want Post 24", entries[0].Title)
	}

	// the recent feed holds exactly the 20 most recent: Post 24 .. Post 5
	recent, err := Serialize(meta, entries, 20)
	if err != nil {
		t.Fatalf("Serialize(recent): %v", err)
	}
	if !strings.Contains(recent, ">Post 5<") {
		t.Error("recent feed missing Post 5")
	}
	for _, excluded := range []string{">Post 4<", ">Post 0<"} {
		if strings.Contains(recent, excluded) {
			t.Errorf("recent feed contains excluded entry %s", excluded)
		}
	}
}
