package imdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"antenna/internal/imdb"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := imdb.New("  ", "agent/1.0"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestNewRequiresUserAgent(t *testing.T) {
	if _, err := imdb.New("https://example.com", ""); err == nil {
		t.Fatal("expected error when user agent missing")
	}
}

func TestFetchListingSendsUserAgentAndCount(t *testing.T) {
	const html = "<html><body>listing</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "agent/1.0" {
			t.Fatalf("expected spoofed user agent, got %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "25" {
			t.Fatalf("expected count query parameter 25, got %q", got)
		}
		if !strings.Contains(r.URL.Query().Get("title_type"), "tv_series") {
			t.Fatalf("expected tv title_type filter, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)

	client, err := imdb.New(server.URL, "agent/1.0")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	body, err := client.FetchListing(context.Background(), 25)
	if err != nil {
		t.Fatalf("FetchListing returned error: %v", err)
	}
	if string(body) != html {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestFetchListingStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := imdb.New(server.URL, "agent/1.0")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.FetchListing(context.Background(), 25)
	var statusErr *imdb.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status code: %d", statusErr.StatusCode)
	}
}

func TestFetchListingTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := imdb.New(server.URL, "agent/1.0")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.FetchListing(context.Background(), 25)
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	var statusErr *imdb.StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure should not be a StatusError: %v", err)
	}
}

func TestFetchListingRejectsNonPositiveCount(t *testing.T) {
	client, err := imdb.New("https://example.com", "agent/1.0")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.FetchListing(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero count")
	}
}
