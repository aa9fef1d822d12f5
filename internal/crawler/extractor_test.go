package crawler

import (
	"net/url"
	"strings"
	"testing"
)

// TestExtractLinksSameOriginClosure tests the core property: no
// returned URL may have a host different from the base host.
func TestExtractLinksSameOriginClosure(t *testing.T) {
	t.Parallel()

	content := `<html><body>
		<a href="/about">About</a>
		<a href="https://example.com/pricing">Pricing</a>
		<a href="http://example.com/legacy">Legacy over http</a>
		<a href="https://other.com/">Elsewhere</a>
		<a href="https://www.example.com/">Subdomain</a>
	</body></html>`

	links := ExtractLinks(content, "https://example.com")

	for _, link := range links {
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("extractor returned unparsable URL %q", link)
		}
		if !strings.EqualFold(u.Host, "example.com") {
			t.Errorf("same-origin closure violated: %q", link)
		}
	}

	want := map[string]bool{
		"https://example.com/about":   true,
		"https://example.com/pricing": true,
		"http://example.com/legacy":   true,
	}
	if len(links) != len(want) {
		t.Fatalf("got %d links %v, expected %d", len(links), links, len(want))
	}
	for _, link := range links {
		if !want[link] {
			t.Errorf("unexpected link %q", link)
		}
	}
}

// TestExtractLinksSkipsNonNavigableTargets tests that fragment-only,
// mailto, tel, and script-scheme targets are ignored.
func TestExtractLinksSkipsNonNavigableTargets(t *testing.T) {
	t.Parallel()

	content := `<html><body>
		<a href="#section">Jump</a>
		<a href="mailto:team@example.com">Mail</a>
		<a href="tel:+15551234">Call</a>
		<a href="javascript:void(0)">Script</a>
		<a href="data:text/plain,hi">Data</a>
		<a href="">Empty</a>
		<a>No href</a>
	</body></html>`

	links := ExtractLinks(content, "https://example.com")
	if len(links) != 0 {
		t.Errorf("expected no links, got %v", links)
	}
}

// TestExtractLinksCanonicalizes tests query, fragment, and trailing
// slash stripping with relative href resolution.
func TestExtractLinksCanonicalizes(t *testing.T) {
	t.Parallel()

	content := `<html><body>
		<a href="/checkout?ref=123#top">Checkout</a>
		<a href="docs/">Docs</a>
		<a href="/checkout">Checkout again</a>
	</body></html>`

	links := ExtractLinks(content, "https://host/index")

	want := map[string]bool{
		"https://host/checkout": true,
		"https://host/docs":     true,
	}
	if len(links) != len(want) {
		t.Fatalf("got %v, expected exactly %d deduplicated links", links, len(want))
	}
	for _, link := range links {
		if !want[link] {
			t.Errorf("unexpected link %q", link)
		}
	}
}

// TestExtractLinksMalformedHTML tests that the parser survives markup
// a regex approach would choke on.
func TestExtractLinksMalformedHTML(t *testing.T) {
	t.Parallel()

	content := `<html><body><a href="/ok">ok<div><a href="/also-ok">unclosed`

	links := ExtractLinks(content, "https://example.com")
	if len(links) != 2 {
		t.Errorf("got %v, expected both links despite malformed markup", links)
	}
}
