package feed

import (
	"strings"
	"testing"
	"time"
)

func testMeta() FeedMeta {
	return FeedMeta{
		Title:      FeedTitle,
		ID:         testBaseURL,
		AuthorName: FeedAuthor,
		Updated:    time.Date(2025, time.October, 1, 8, 30, 0, 0, time.UTC),
	}
}

func entryAt(title string, ts time.Time) Entry {
	return Entry{
		Title:       title,
		URL:         "https://example.com/" + strings.ReplaceAll(title, " ", "-"),
		PublishedAt: ts,
	}
}

func TestSortEntriesDescending(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2025, time.September, day, 12, 0, 0, 0, time.UTC)
	}
	entries := []Entry{
		entryAt("middle", d(10)),
		entryAt("newest", d(20)),
		entryAt("oldest", d(1)),
	}
	SortEntries(entries)

	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if entries[i].Title != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Title, w)
		}
	}
}

func TestSortEntriesStableOnTies(t *testing.T) {
	tie := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		entryAt("first extracted", tie),
		entryAt("second extracted", tie),
		entryAt("newer", time.Date(2025, time.September, 11, 12, 0, 0, 0, time.UTC)),
		entryAt("third extracted", tie),
	}
	SortEntries(entries)

	want := []string{"newer", "first extracted", "second extracted", "third extracted"}
	for i, w := range want {
		if entries[i].Title != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Title, w)
		}
	}
}

func TestSerializeShape(t *testing.T) {
	e := Entry{
		Title:       "Shaped entry",
		URL:         "https://example.com/shaped",
		Summary:     "A summary.",
		PublishedAt: time.Date(2025, time.September, 29, 12, 0, 0, 0, time.UTC),
		ContentHTML: "<p>A summary.</p>",
	}
	out, err := Serialize(testMeta(), []Entry{e}, 0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`+"\n") {
		t.Errorf("missing XML declaration, got prefix %q", out[:40])
	}
	for _, want := range []string{
		`<feed xmlns="http://www.w3.org/2005/Atom">`,
		`<title>Anthropic Engineering Blog</title>`,
		`<id>` + testBaseURL + `</id>`,
		`<name>Anthropic</name>`,
		`<link href="` + testBaseURL + `" rel="self">`,
		`<updated>2025-10-01T08:30:00Z</updated>`,
		`<title>Shaped entry</title>`,
		`<id>https://example.com/shaped</id>`,
		`<link href="https://example.com/shaped">`,
		`<summary>A summary.</summary>`,
		`<updated>2025-09-29T12:00:00Z</updated>`,
		// the HTML fragment is escaped as character data
		`<content type="html">&lt;p&gt;A summary.&lt;/p&gt;</content>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestSerializeOmitsAbsentFields(t *testing.T) {
	e := entryAt("bare", time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC))
	out, err := Serialize(testMeta(), []Entry{e}, 0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if strings.Contains(out, "<summary>") {
		t.Error("summary element present for entry without summary")
	}
	if strings.Contains(out, "<content") {
		t.Error("content element present for entry without content")
	}
}

func TestSerializeEmptyFeed(t *testing.T) {
	out, err := Serialize(testMeta(), nil, 0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if strings.Contains(out, "<entry>") {
		t.Error("empty feed contains entry elements")
	}
	// metadata envelope is still complete
	for _, want := range []string{"<title>", "<id>", "<author>", "<updated>"} {
		if !strings.Contains(out, want) {
			t.Errorf("empty feed missing %q", want)
		}
	}
}

func TestSerializeTruncation(t *testing.T) {
	entries := make([]Entry, 0, 25)
	for i := 0; i < 25; i++ {
		ts := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -i)
		entries = append(entries, entryAt("entry-"+string(rune('a'+i)), ts))
	}

	tests := []struct {
		limit int
		want  int
	}{
		{20, 20},
		{0, 25},  // no limit
		{40, 25}, // limit larger than entry count is not an error
	}
	for _, tt := range tests {
		out, err := Serialize(testMeta(), entries, tt.limit)
		if err != nil {
			t.Fatalf("Serialize(limit=%d): %v", tt.limit, err)
		}
		if got := strings.Count(out, "<entry>"); got != tt.want {
			t.Errorf("Serialize(limit=%d) has %d entries, want %d", tt.limit, got, tt.want)
		}
	}

	// the recent view is exactly the head of the sorted sequence
	out, err := Serialize(testMeta(), entries, 20)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(out, ">"+entries[19].Title+"<") {
		t.Errorf("20th entry %q missing from truncated feed", entries[19].Title)
	}
	if strings.Contains(out, ">"+entries[20].Title+"<") {
		t.Errorf("21st entry %q present in truncated feed", entries[20].Title)
	}
}
