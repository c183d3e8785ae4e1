// Package tvmaze provides the minimal TVmaze API client used to resolve IMDb
// ids to TVDB ids.
//
// A lookup never returns a Go error to its caller: the Resolution value
// states explicitly whether a mapping was found, was absent, or could not be
// retrieved because the request itself failed. Callers decide how each
// outcome affects the batch. Options allow tests to supply custom HTTP
// clients without modifying production code.
package tvmaze
