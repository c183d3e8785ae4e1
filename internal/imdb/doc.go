// Package imdb fetches the IMDb popular-TV listing page and extracts ordered
// show records from its markup.
//
// Fetching and extraction are deliberately separate steps: Client.FetchListing
// performs exactly one GET with a browser-like user agent and returns the raw
// HTML, while Extract parses that HTML without touching the network. Extract
// walks an ordered set of layout matchers (the current title-card markup
// first, then the retired lister markup) and returns records from the first
// matcher that produces any, so a markup change degrades to the fallback
// instead of failing the run.
package imdb
