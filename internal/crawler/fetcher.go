package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/qa-radar/qaradar/internal/model"
)

// Fetcher default settings. The defaults favor politeness: one request
// per second per fetcher, modest body cap, short timeout.
const (
	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize caps response bodies at 2MB. Pages larger than
	// this are truncated; the detector works on text, not assets.
	DefaultMaxBodySize = 2 * 1024 * 1024

	// DefaultRequestsPerSecond is the politeness ceiling for the target
	// origin.
	DefaultRequestsPerSecond = 2

	// DefaultUserAgent identifies the scanner in HTTP requests so
	// operators can recognize discovery traffic in their logs.
	DefaultUserAgent = "QARadar/2.0 (+https://github.com/qa-radar/qaradar)"

	// sniffWindow is how many leading bytes are inspected for an HTML
	// root marker when the content-type header is inconclusive.
	sniffWindow = 1024
)

// Fetcher performs exactly one bounded HTTP GET per URL. It never
// retries; a retry, if ever wanted, is an explicit caller decision.
// All failure modes land in the FetchResult error field; the Fetch
// method has no error return, because a failed fetch is data for the
// brief, not a fault of the engine.
type Fetcher struct {
	// client is the HTTP client. Redirects are followed; the final
	// resolved URL is recorded on the result.
	client *http.Client

	// limiter throttles requests against the target origin.
	limiter *rate.Limiter

	// userAgent is sent with every request.
	userAgent string

	// maxBodySize caps how much of a response body is read.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the internal HTTP client. Used by tests and
// by callers that need custom transport settings.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithRequestsPerSecond sets the politeness rate limit. Zero or
// negative disables limiting.
func WithRequestsPerSecond(rps float64) FetcherOption {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a Fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration, opts ...FetcherOption) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	f := &Fetcher{
		client:      &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs at most one network request for the target URL and
// classifies the outcome. The body is non-empty only when the status is
// 200 and the content is HTML-like; any other outcome yields an empty
// body and a descriptive error string.
//
// Redirects are followed and FinalURL records where the request
// actually landed. Callers must use FinalURL, not the requested URL,
// for subsequent identity decisions.
func (f *Fetcher) Fetch(ctx context.Context, target string) model.FetchResult {
	result := model.FetchResult{URL: target, FinalURL: target}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			result.Error = fmt.Sprintf("cancelled before request: %v", err)
			return result
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		result.Error = fmt.Sprintf("invalid request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer resp.Body.Close() //nolint:errcheck // Read side already consumed

	result.Status = resp.StatusCode
	if resp.Request != nil && resp.Request.URL != nil {
		result.FinalURL = resp.Request.URL.String()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		result.Error = fmt.Sprintf("body read failed: %v", err)
		return result
	}

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("status %d", resp.StatusCode)
		return result
	}

	if !isHTML(resp.Header.Get("Content-Type"), body) {
		result.Error = "non-HTML content"
		return result
	}

	result.Body = string(body)
	return result
}

// isHTML classifies a response as HTML via the content-type header or,
// failing that, a case-insensitive sniff of the leading bytes for an
// HTML root marker.
func isHTML(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml") {
		return true
	}

	window := body
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	sniff := strings.ToLower(string(window))
	return strings.Contains(sniff, "<html") || strings.Contains(sniff, "<!doctype html")
}
