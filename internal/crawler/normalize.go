package crawler

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeOrigin canonicalizes a raw user-supplied string into an
// absolute origin URL. A missing scheme defaults to https. The function
// performs no network access; it only validates syntax.
func NormalizeOrigin(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyOrigin
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparsableOrigin, raw)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrUnparsableOrigin, raw)
	}

	return Canonicalize(u), nil
}

// Canonicalize reduces a URL to its canonical identity: lowercased
// scheme and host, query and fragment removed, trailing slash stripped.
// Two URLs differing only in query or fragment are the same entity.
func Canonicalize(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	c.User = nil
	c.RawQuery = ""
	c.Fragment = ""
	c.RawFragment = ""
	c.Path = strings.TrimSuffix(c.Path, "/")
	c.RawPath = ""
	return c.String()
}

// CanonicalizeString parses and canonicalizes a URL string. Unparsable
// input is returned unchanged; identity decisions on garbage input are
// made by whoever produced it.
func CanonicalizeString(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return Canonicalize(u)
}

// SameOrigin reports whether a URL belongs to the given origin host.
// Host comparison is exact (case-insensitive); scheme is deliberately
// not compared, so an http link on an https site stays in scope.
func SameOrigin(originHost, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, originHost)
}
