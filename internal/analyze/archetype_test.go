package analyze

import "testing"

// TestGuessArchetype tests the fixed keyword buckets.
func TestGuessArchetype(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{"medical", `<html><p>Talk to your doctor about treatment options. HIPAA compliant.</p></html>`, ArchetypeRegulated},
		{"commercial", `<html><p>Free shipping on every order. Add to cart today.</p></html>`, ArchetypeCommercial},
		{"b2b", `<html><p>Request a demo and see the enterprise plan.</p></html>`, ArchetypeB2B},
		{"general", `<html><p>A personal blog about gardening.</p></html>`, ArchetypeGeneral},
		{"empty", ``, ArchetypeGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := GuessArchetype(tc.content); got != tc.expected {
				t.Errorf("GuessArchetype() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestGuessArchetypeBucketPriority tests that the regulated bucket wins
// when a page matches several buckets.
func TestGuessArchetypeBucketPriority(t *testing.T) {
	t.Parallel()

	content := `<html><p>Online pharmacy checkout with free shipping.</p></html>`
	if got := GuessArchetype(content); got != ArchetypeRegulated {
		t.Errorf("GuessArchetype() = %q, expected the regulated bucket to win", got)
	}
}
