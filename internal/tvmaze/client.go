package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Outcome classifies the result of one lookup.
type Outcome string

const (
	// OutcomeFound means the API returned a positive TVDB id.
	OutcomeFound Outcome = "found"
	// OutcomeNotFound means the API answered but no usable TVDB id exists.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeTransportFailed means the request never produced an answer.
	OutcomeTransportFailed Outcome = "transport_failed"
)

// Resolution is the explicit result of resolving one IMDb id. TVDBID is
// positive exactly when Outcome is OutcomeFound; Err is set exactly when
// Outcome is OutcomeTransportFailed.
type Resolution struct {
	Outcome Outcome
	TVDBID  int64
	Err     error
}

// Resolved reports whether the lookup produced a usable TVDB id.
func (r Resolution) Resolved() bool { return r.Outcome == OutcomeFound }

// Found builds a successful Resolution.
func Found(tvdbID int64) Resolution {
	return Resolution{Outcome: OutcomeFound, TVDBID: tvdbID}
}

// NotFound builds a Resolution for an id the API has no usable mapping for.
func NotFound() Resolution {
	return Resolution{Outcome: OutcomeNotFound}
}

// TransportFailed builds a Resolution for a request that produced no answer.
func TransportFailed(err error) Resolution {
	return Resolution{Outcome: OutcomeTransportFailed, Err: err}
}

// Resolver defines the lookup operation the pipeline depends on.
type Resolver interface {
	Lookup(ctx context.Context, imdbID string) Resolution
}

// Client provides access to the TVmaze lookup API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Resolver = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TVmaze client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tvmaze base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// showResponse models the subset of the TVmaze show payload the resolver
// reads. A missing thetvdb field decodes to zero, which fails the positive
// check the same way an explicit zero does.
type showResponse struct {
	Externals struct {
		TheTVDB int64 `json:"thetvdb"`
	} `json:"externals"`
}

// Lookup resolves one IMDb id to a TVDB id. A non-2xx response, a malformed
// body, or a payload without a positive thetvdb value all yield NotFound; a
// request that fails outright yields TransportFailed. Lookups are independent
// and never abort a batch.
func (c *Client) Lookup(ctx context.Context, imdbID string) Resolution {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return NotFound()
	}

	endpoint, err := url.Parse(c.baseURL + "/lookup/shows")
	if err != nil {
		return TransportFailed(fmt.Errorf("parse tvmaze url: %w", err))
	}
	params := url.Values{}
	params.Set("imdb", imdbID)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return TransportFailed(fmt.Errorf("build request: %w", err))
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return TransportFailed(fmt.Errorf("lookup %s (latency=%v): %w", imdbID, latency, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NotFound()
	}

	var payload showResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return NotFound()
	}
	if payload.Externals.TheTVDB <= 0 {
		return NotFound()
	}
	return Found(payload.Externals.TheTVDB)
}
