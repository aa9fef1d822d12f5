package crawler

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks parses HTML and returns the deduplicated same-origin
// URLs referenced by anchor elements, canonicalized (query, fragment,
// and trailing slash removed) and resolved against baseURL.
//
// The return value has set semantics: each canonical URL appears once,
// in discovery order. Ordering is not part of the contract here; the
// frontier bounder imposes a deterministic order downstream.
//
// Design decision: We parse with golang.org/x/net/html rather than
// regex because real-world markup is routinely malformed and the parser
// recovers where patterns would not.
func ExtractLinks(content, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse only fails on reader errors; a strings.Reader
		// cannot produce one, but keep the guard for correctness.
		return nil
	}

	seen := make(map[string]bool)
	links := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if resolved := resolveHref(base, anchorHref(n)); resolved != "" {
				canonical := CanonicalizeString(resolved)
				if !seen[canonical] {
					seen[canonical] = true
					links = append(links, canonical)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

// anchorHref returns the href attribute of an anchor node.
func anchorHref(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return attr.Val
		}
	}
	return ""
}

// resolveHref resolves an href against the base URL and applies the
// same-origin filter. Fragment-only, mailto, tel, javascript, and data
// targets are dropped. The host must match the base host exactly;
// scheme mismatch alone does not disqualify a link.
func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	lower := strings.ToLower(href)
	for _, prefix := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(u)
	if !strings.EqualFold(resolved.Host, base.Host) {
		return ""
	}

	return resolved.String()
}
