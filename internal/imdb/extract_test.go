package imdb_test

import (
	"fmt"
	"strings"
	"testing"

	"antenna/internal/imdb"
)

func currentItem(href, heading string) string {
	return `<li><a class="ipc-title-link-wrapper" href="` + href + `"><h3 class="ipc-title__text">` + heading + `</h3></a></li>`
}

func legacyItem(href, title string) string {
	return `<div class="lister-item mode-advanced"><h3 class="lister-item-header">` +
		`<span class="lister-item-index">1.</span> <a href="` + href + `">` + title + `</a></h3></div>`
}

func page(body string) []byte {
	return []byte("<html><body><ul>" + body + "</ul></body></html>")
}

func TestExtractCurrentLayout(t *testing.T) {
	html := page(
		currentItem("/title/tt1234567/?ref_=sr_t_1", "1. Wednesday") +
			currentItem("/title/tt7654321/?ref_=sr_t_2", "2. The Witcher"),
	)

	records, layout, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutCurrent {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutCurrent)
	}
	want := []imdb.Record{
		{Title: "Wednesday", IMDBID: "tt1234567"},
		{Title: "The Witcher", IMDBID: "tt7654321"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %#v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d = %#v, want %#v", i, records[i], want[i])
		}
	}
}

func TestExtractLegacyFallback(t *testing.T) {
	html := page(
		legacyItem("/title/tt0303461/?ref_=adv_li_tt", "Firefly") +
			legacyItem("/title/tt0475784/?ref_=adv_li_tt", "Westworld"),
	)

	records, layout, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutLegacy {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutLegacy)
	}
	if len(records) != 2 || records[0].IMDBID != "tt0303461" || records[1].Title != "Westworld" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestExtractPrefersCurrentOverLegacy(t *testing.T) {
	html := page(
		currentItem("/title/tt1234567/", "1. Wednesday") +
			legacyItem("/title/tt0303461/", "Firefly"),
	)

	records, layout, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutCurrent {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutCurrent)
	}
	if len(records) != 1 || records[0].Title != "Wednesday" {
		t.Fatalf("expected only current-layout records, got %#v", records)
	}
}

func TestExtractCapsAtLimit(t *testing.T) {
	var body strings.Builder
	for i := 0; i < 10; i++ {
		href := fmt.Sprintf("/title/tt%07d/", i+1)
		heading := fmt.Sprintf("%d. Show %d", i+1, i+1)
		body.WriteString(currentItem(href, heading))
	}
	html := page(body.String())

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 3, want: 3},
		{limit: 10, want: 10},
		{limit: 25, want: 10},
		{limit: 0, want: 0},
		{limit: -1, want: 0},
	}
	for _, tc := range tests {
		records, _, err := imdb.Extract(html, tc.limit)
		if err != nil {
			t.Fatalf("Extract(limit=%d) returned error: %v", tc.limit, err)
		}
		if len(records) != tc.want {
			t.Fatalf("Extract(limit=%d) returned %d records, want %d", tc.limit, len(records), tc.want)
		}
	}

	records, _, err := imdb.Extract(html, 3)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if records[0].Title != "Show 1" || records[2].Title != "Show 3" {
		t.Fatalf("expected the first three shows in order, got %#v", records)
	}
}

func TestExtractStripsRankPrefix(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{name: "plain rank", heading: "3. Show Name", want: "Show Name"},
		{name: "no rank", heading: "Show Without Rank", want: "Show Without Rank"},
		{name: "numeric title keeps own digits", heading: "12. 12 Monkeys", want: "12 Monkeys"},
		{name: "rank with non-breaking space", heading: "1. Wednesday", want: "Wednesday"},
		{name: "multi digit rank", heading: "104. Dark", want: "Dark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			html := page(currentItem("/title/tt1234567/", tc.heading))
			records, _, err := imdb.Extract(html, 1)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected one record, got %#v", records)
			}
			if records[0].Title != tc.want {
				t.Fatalf("title = %q, want %q", records[0].Title, tc.want)
			}
		})
	}
}

func TestExtractFallsBackToAnchorText(t *testing.T) {
	html := page(`<li><a class="ipc-title-link-wrapper" href="/title/tt0903747/">2. Breaking Bad</a></li>`)

	records, _, err := imdb.Extract(html, 5)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Breaking Bad" || records[0].IMDBID != "tt0903747" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestExtractSkipsMalformedEntries(t *testing.T) {
	html := page(
		currentItem("/title/ttabc/", "1. Broken Id") +
			currentItem("/title/tt1234567/", "") +
			currentItem("/title/tt7654321/", "3. Kept Show"),
	)

	records, layout, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutCurrent {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutCurrent)
	}
	if len(records) != 1 || records[0].Title != "Kept Show" {
		t.Fatalf("expected only the well-formed record, got %#v", records)
	}
}

func TestExtractLegacyRequiresTerminatedHref(t *testing.T) {
	html := page(
		legacyItem("/title/tt0903747", "Breaking Bad") +
			legacyItem("/title/tt0475784/", "Westworld"),
	)

	records, layout, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutLegacy {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutLegacy)
	}
	if len(records) != 1 || records[0].IMDBID != "tt0475784" {
		t.Fatalf("expected only the slash-terminated href, got %#v", records)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	records, layout, err := imdb.Extract([]byte("<html><body></body></html>"), 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if layout != imdb.LayoutNone {
		t.Fatalf("layout = %q, want %q", layout, imdb.LayoutNone)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %#v", records)
	}
}

func TestExtractKeepsDuplicates(t *testing.T) {
	html := page(
		currentItem("/title/tt1234567/", "1. Wednesday") +
			currentItem("/title/tt1234567/", "2. Wednesday"),
	)

	records, _, err := imdb.Extract(html, 25)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected duplicates preserved, got %#v", records)
	}
}
