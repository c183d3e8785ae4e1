// Package textutil cleans up text scraped from HTML before it is compared,
// logged, or written to output files.
//
// Scraped titles arrive with non-breaking spaces, zero-width characters, and
// decomposed unicode sequences depending on how the source page was rendered.
// NormalizeTitle canonicalizes all of that so downstream consumers see plain,
// single-spaced NFC strings.
package textutil
