package analyze

import (
	"testing"

	"github.com/qa-radar/qaradar/internal/model"
)

// TestClassifyTrustDomain tests path-based classification.
func TestClassifyTrustDomain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		url      string
		expected model.TrustDomain
	}{
		// Support/legal set
		{"https://host/support", model.DomainSupportReliability},
		{"https://host/help/getting-started", model.DomainSupportReliability},
		{"https://host/privacy", model.DomainSupportReliability},
		{"https://host/terms-of-service", model.DomainSupportReliability},
		{"https://host/legal/refund", model.DomainSupportReliability},
		{"https://host/CONTACT", model.DomainSupportReliability},

		// Transaction set
		{"https://host/checkout", model.DomainTransactionSafety},
		{"https://host/pricing", model.DomainTransactionSafety},
		{"https://host/billing/history", model.DomainTransactionSafety},
		{"https://host/cart", model.DomainTransactionSafety},

		// Default
		{"https://host", model.DomainBrandCredibility},
		{"https://host/about", model.DomainBrandCredibility},
		{"https://host/blog/2026/launch", model.DomainBrandCredibility},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyTrustDomain(tc.url); got != tc.expected {
				t.Errorf("ClassifyTrustDomain(%q) = %v, expected %v", tc.url, got, tc.expected)
			}
		})
	}
}

// TestClassifyPrecedence tests that a path matching both keyword sets
// lands in Support Reliability: trust-critical informational pages
// outrank commercial classification.
func TestClassifyPrecedence(t *testing.T) {
	t.Parallel()

	for _, u := range []string{
		"https://host/support/billing",
		"https://host/help/checkout-issues",
		"https://host/refund-payment",
	} {
		if got := ClassifyTrustDomain(u); got != model.DomainSupportReliability {
			t.Errorf("ClassifyTrustDomain(%q) = %v, expected Support Reliability to win", u, got)
		}
	}
}

// TestClassifyDeterministicAndTotal tests that every input maps to
// exactly one domain, identically on repeat calls.
func TestClassifyDeterministicAndTotal(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://host/checkout?ref=123#top",
		"not even a url ::",
		"",
		"https://host/anything",
	}

	valid := map[model.TrustDomain]bool{
		model.DomainBrandCredibility:   true,
		model.DomainTransactionSafety:  true,
		model.DomainSupportReliability: true,
	}

	for _, in := range inputs {
		first := ClassifyTrustDomain(in)
		if !valid[first] {
			t.Errorf("ClassifyTrustDomain(%q) = %v, outside the three trust domains", in, first)
		}
		if second := ClassifyTrustDomain(in); second != first {
			t.Errorf("ClassifyTrustDomain(%q) is not deterministic: %v then %v", in, first, second)
		}
	}
}
