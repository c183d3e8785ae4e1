package imdb

import "fmt"

// StatusError reports a non-2xx response from the listing endpoint.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "listing status error"
	}
	return fmt.Sprintf("listing returned HTTP %d for %s", e.StatusCode, e.URL)
}
