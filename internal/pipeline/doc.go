// Package pipeline runs the scrape, resolve, and publish stages as one
// sequential pass.
//
// A run fetches the listing page, extracts show records, resolves each IMDb
// id to a TVDB id, and writes the Sonarr import list. Records that fail
// resolution are dropped with a warning; the run aborts only when no records
// survive a stage. Concurrent runs against the same output file are rejected
// via a lock file kept next to the output.
package pipeline
