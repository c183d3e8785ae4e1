package imdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// listingPath is the search endpoint serving the popular-TV listing. The
// title_type filter keeps episodes and miniseries in scope; count controls
// the page size.
const listingPath = "/search/title/?title_type=tv_series,tv_miniseries,tv_short,tv_movie,tv_episode&languages=en&count="

// Client fetches listing pages from IMDb.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

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

// New creates an IMDb listing client. The user agent is mandatory because the
// listing endpoint rejects requests without a browser-like agent.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("imdb base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("imdb user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ListingURL returns the listing page URL for the requested item count.
func (c *Client) ListingURL(count int) string {
	return c.baseURL + listingPath + strconv.Itoa(count)
}

// FetchListing performs a single GET against the popular-TV listing and
// returns the raw HTML. Any non-2xx response is returned as a *StatusError.
func (c *Client) FetchListing(ctx context.Context, count int) ([]byte, error) {
	if count < 1 {
		return nil, errors.New("count must be positive")
	}

	listingURL := c.ListingURL(count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("fetch listing (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: listingURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read listing body: %w", err)
	}
	return body, nil
}
