package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// zeroWidthReplacer removes characters that render invisibly but break string
// comparison: zero-width space/joiner/non-joiner and the BOM.
var zeroWidthReplacer = strings.NewReplacer(
	"​", "",
	"‌", "",
	"‍", "",
	"\uFEFF", "",
)

// NormalizeTitle canonicalizes a scraped title: strips zero-width characters,
// collapses all unicode whitespace (including non-breaking spaces) to single
// spaces, trims the ends, and applies NFC normalization.
func NormalizeTitle(value string) string {
	value = zeroWidthReplacer.Replace(value)
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return ""
	}
	return norm.NFC.String(value)
}

// CollapseSpaces reduces runs of unicode whitespace to single spaces and trims
// the ends. Unlike NormalizeTitle it leaves the unicode form untouched.
func CollapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
