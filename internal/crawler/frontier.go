package crawler

import "sort"

// Bound merges the origin homepage and the extracted links into an
// ordered, deduplicated, size-capped traversal list.
//
// The homepage is always first. Extracted links follow in lexicographic
// order rather than discovery order, so identical input always
// produces an identical frontier, which test fixtures and history
// comparisons depend on. The list is truncated at maxPages.
func Bound(originURL string, links []string, maxPages int) ([]string, error) {
	if maxPages <= 0 {
		return nil, ErrInvalidMaxPages
	}

	home := CanonicalizeString(originURL)

	seen := map[string]bool{home: true}
	rest := make([]string, 0, len(links))
	for _, link := range links {
		canonical := CanonicalizeString(link)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		rest = append(rest, canonical)
	}
	sort.Strings(rest)

	frontier := append([]string{home}, rest...)
	if len(frontier) > maxPages {
		frontier = frontier[:maxPages]
	}

	return frontier, nil
}
