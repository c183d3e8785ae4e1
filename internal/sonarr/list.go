// Package sonarr renders the JSON document Sonarr consumes as a custom
// import list.
package sonarr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"antenna/internal/fileutil"
)

// Entry is one show in the import list. Struct order fixes the key order in
// the rendered document: title first, then tvdbId.
type Entry struct {
	Title  string `json:"title"`
	TVDBID int64  `json:"tvdbId"`
}

// Marshal renders entries as the import-list document: a two-space indented
// JSON array terminated by a newline. HTML escaping is disabled so titles
// keep characters like ampersands literally. A nil slice renders as an empty
// array.
func Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode import list: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteList atomically replaces the file at path with the rendered list and
// reports the number of entries written.
func WriteList(path string, entries []Entry) (int, error) {
	data, err := Marshal(entries)
	if err != nil {
		return 0, err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write import list: %w", err)
	}
	return len(entries), nil
}
