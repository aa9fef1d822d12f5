package analyze

import (
	"net/url"
	"strings"

	"github.com/qa-radar/qaradar/internal/model"
)

// Trust-domain path keyword sets. Matching is a case-insensitive
// substring test against the URL path only, never the query, which
// canonical URLs no longer carry anyway.
var (
	// supportKeywords route a page to Support Reliability. Legal and
	// policy terms live here deliberately: a broken promise on a terms
	// page is a trust failure before it is a commercial one.
	supportKeywords = []string{
		"support", "help", "faq", "contact", "privacy", "terms",
		"legal", "policy", "refund", "returns", "complaint", "accessibility",
	}

	// transactionKeywords route a page to Transaction Safety.
	transactionKeywords = []string{
		"checkout", "cart", "billing", "pricing", "price", "payment",
		"pay", "subscribe", "order", "plans", "buy", "purchase",
	}
)

// ClassifyTrustDomain maps a URL to one of the three trust domains.
// It is a pure function of the URL path: support/legal keywords are
// checked before transaction keywords, so a path matching both sets
// (say /support/billing) lands in Support Reliability: trust-critical
// informational pages outrank commercial classification. Everything
// else defaults to Brand Credibility.
func ClassifyTrustDomain(pageURL string) model.TrustDomain {
	u, err := url.Parse(pageURL)
	if err != nil {
		return model.DomainBrandCredibility
	}

	path := strings.ToLower(u.Path)

	for _, kw := range supportKeywords {
		if strings.Contains(path, kw) {
			return model.DomainSupportReliability
		}
	}
	for _, kw := range transactionKeywords {
		if strings.Contains(path, kw) {
			return model.DomainTransactionSafety
		}
	}

	return model.DomainBrandCredibility
}
