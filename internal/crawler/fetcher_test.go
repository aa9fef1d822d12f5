package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newTestFetcher builds a fetcher suitable for httptest servers:
// no rate limit, short timeout.
func newTestFetcher(timeout time.Duration) *Fetcher {
	return NewFetcher(timeout, WithRequestsPerSecond(0))
}

// TestFetchUsableHTML tests the happy path: 200 with an HTML
// content-type yields a non-empty body and no error.
func TestFetchUsableHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	result := newTestFetcher(2 * time.Second).Fetch(context.Background(), srv.URL)

	if !result.Usable() {
		t.Fatalf("expected usable result, got error %q status %d", result.Error, result.Status)
	}
	if !strings.Contains(result.Body, "hello") {
		t.Errorf("body does not contain served content: %q", result.Body)
	}
}

// TestFetchSniffsHTMLRootMarker tests that a missing content-type is
// compensated by a case-insensitive body sniff.
func TestFetchSniffsHTMLRootMarker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("<HTML><body>sniffed</body></HTML>"))
	}))
	defer srv.Close()

	result := newTestFetcher(2 * time.Second).Fetch(context.Background(), srv.URL)

	if !result.Usable() {
		t.Fatalf("expected sniffed HTML to be usable, got error %q", result.Error)
	}
}

// TestFetchNon200 tests that a non-200 response yields an empty body
// and a descriptive error string, not a Go error.
func TestFetchNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	result := newTestFetcher(2 * time.Second).Fetch(context.Background(), srv.URL)

	if result.Usable() {
		t.Fatal("404 must not be usable")
	}
	if result.Status != http.StatusNotFound {
		t.Errorf("Status = %d, expected 404", result.Status)
	}
	if result.Error == "" || result.Body != "" {
		t.Errorf("expected descriptive error and empty body, got error %q body %q", result.Error, result.Body)
	}
}

// TestFetchNonHTML tests that non-HTML content is classified unusable.
func TestFetchNonHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not": "html"}`))
	}))
	defer srv.Close()

	result := newTestFetcher(2 * time.Second).Fetch(context.Background(), srv.URL)

	if result.Usable() {
		t.Fatal("JSON response must not be usable")
	}
	if result.Error != "non-HTML content" {
		t.Errorf("Error = %q, expected %q", result.Error, "non-HTML content")
	}
}

// TestFetchRecordsFinalURL tests that redirects are followed and the
// final resolved URL is recorded distinct from the requested one.
func TestFetchRecordsFinalURL(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/landed", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/landed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>landed</html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	result := newTestFetcher(2 * time.Second).Fetch(context.Background(), srv.URL+"/start")

	if !result.Usable() {
		t.Fatalf("expected usable result after redirect, got %q", result.Error)
	}
	if result.FinalURL != srv.URL+"/landed" {
		t.Errorf("FinalURL = %q, expected %q", result.FinalURL, srv.URL+"/landed")
	}
	if result.URL != srv.URL+"/start" {
		t.Errorf("URL = %q, expected the originally requested URL", result.URL)
	}
}

// TestFetchTimeout tests that a timeout is reported in the error field
// with an empty body, never as a panic or propagated error.
func TestFetchTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	result := newTestFetcher(50 * time.Millisecond).Fetch(context.Background(), srv.URL)

	if result.Usable() {
		t.Fatal("timed-out fetch must not be usable")
	}
	if result.Error == "" {
		t.Error("expected a descriptive error for the timeout")
	}
	if result.Body != "" {
		t.Error("expected empty body on timeout")
	}
}

// TestFetchCancelledContext tests prompt abort on caller cancellation.
func TestFetchCancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestFetcher(2 * time.Second).Fetch(ctx, srv.URL)
	if result.Error == "" {
		t.Error("expected error on pre-cancelled context")
	}
}
