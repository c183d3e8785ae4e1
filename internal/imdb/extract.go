package imdb

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"antenna/internal/textutil"
)

// Record is one show extracted from the listing, in listing-rank order.
type Record struct {
	Title  string
	IMDBID string
}

// Layout names the markup variant a set of records was extracted with.
type Layout string

const (
	// LayoutCurrent is the title-card markup IMDb serves today.
	LayoutCurrent Layout = "current"
	// LayoutLegacy is the retired lister markup kept as a fallback.
	LayoutLegacy Layout = "legacy"
	// LayoutNone means no matcher produced any records.
	LayoutNone Layout = "none"
)

var (
	// rankPrefixPattern strips the "1. " rank IMDb prepends to titles.
	rankPrefixPattern = regexp.MustCompile(`^\d+\.\s*`)
	// idPattern matches an IMDb title id anywhere in an href.
	idPattern = regexp.MustCompile(`tt\d+`)
	// legacyIDPattern captures the title id from a lister-style href.
	legacyIDPattern = regexp.MustCompile(`/title/(tt\d+)/`)
)

// layoutMatcher extracts records for one known markup variant. Matchers are
// tried in order; adding support for a future redesign means appending one
// here.
type layoutMatcher interface {
	layout() Layout
	extract(doc *goquery.Document, limit int) []Record
}

var matchers = []layoutMatcher{currentLayout{}, legacyLayout{}}

// Extract parses listing HTML and returns at most limit records from the
// first layout matcher that produces any, along with the layout that matched.
// An empty result is not an error; callers decide whether that aborts the
// run. Duplicate records are passed through untouched.
func Extract(html []byte, limit int) ([]Record, Layout, error) {
	if limit <= 0 {
		return nil, LayoutNone, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, LayoutNone, fmt.Errorf("parse listing html: %w", err)
	}

	for _, matcher := range matchers {
		if records := matcher.extract(doc, limit); len(records) > 0 {
			return records, matcher.layout(), nil
		}
	}
	return nil, LayoutNone, nil
}

// currentLayout matches the title-card markup: an ipc-title-link-wrapper
// anchor holding the title href, with the display title in a nested h3.
type currentLayout struct{}

func (currentLayout) layout() Layout { return LayoutCurrent }

func (currentLayout) extract(doc *goquery.Document, limit int) []Record {
	var records []Record
	doc.Find(`a.ipc-title-link-wrapper[href*="/title/tt"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(records) >= limit {
			return false
		}
		href, ok := s.Attr("href")
		if !ok {
			return true
		}
		id := idPattern.FindString(href)
		if id == "" {
			return true
		}

		title := s.Find("h3.ipc-title__text").First().Text()
		if strings.TrimSpace(title) == "" {
			// Markup without the nested heading still carries the
			// title as anchor text.
			title = s.Text()
		}
		title = cleanTitle(title)
		if title == "" {
			return true
		}

		records = append(records, Record{Title: title, IMDBID: id})
		return true
	})
	return records
}

// legacyLayout matches the retired lister markup: div.lister-item entries
// with the title anchor inside an h3 header.
type legacyLayout struct{}

func (legacyLayout) layout() Layout { return LayoutLegacy }

func (legacyLayout) extract(doc *goquery.Document, limit int) []Record {
	var records []Record
	doc.Find("div.lister-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if len(records) >= limit {
			return false
		}
		link := item.Find("h3.lister-item-header a").First()
		if link.Length() == 0 {
			return true
		}
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		match := legacyIDPattern.FindStringSubmatch(href)
		if match == nil {
			return true
		}

		title := cleanTitle(link.Text())
		if title == "" {
			return true
		}

		records = append(records, Record{Title: title, IMDBID: match[1]})
		return true
	})
	return records
}

// cleanTitle normalizes scraped title text and strips the leading rank
// number, so "1. Wednesday" becomes "Wednesday".
func cleanTitle(raw string) string {
	title := textutil.NormalizeTitle(raw)
	return rankPrefixPattern.ReplaceAllString(title, "")
}
