package analyze

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Archetype names. The guess is purely advisory: it gives the reviewer
// a frame for reading the brief and is never used to alter scoring.
const (
	ArchetypeRegulated  = "regulated/medical"
	ArchetypeCommercial = "commercial/transactional"
	ArchetypeB2B        = "b2b-enterprise"
	ArchetypeGeneral    = "general"
)

// archetypeBuckets are evaluated in order; the first bucket with a
// keyword hit wins. Regulated domains come first because a medical
// page with a cart is still a medical page to a reviewer.
var archetypeBuckets = []struct {
	name     string
	keywords []string
}{
	{ArchetypeRegulated, []string{
		"hipaa", "patient", "clinical", "medical", "pharmacy",
		"diagnosis", "treatment", "prescription", "fda",
	}},
	{ArchetypeCommercial, []string{
		"checkout", "add to cart", "buy now", "free shipping",
		"pricing", "order now", "shop",
	}},
	{ArchetypeB2B, []string{
		"enterprise", "request a demo", "book a demo", "roi",
		"procurement", "case study", "saas",
	}},
}

// GuessArchetype inspects homepage markup against fixed keyword buckets
// and returns an archetype name. Pages matching nothing are "general".
func GuessArchetype(homepage string) string {
	text := strings.ToLower(norm.NFKC.String(homepage))

	for _, bucket := range archetypeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(text, kw) {
				return bucket.name
			}
		}
	}

	return ArchetypeGeneral
}
