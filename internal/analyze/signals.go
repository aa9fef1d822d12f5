package analyze

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"

	"github.com/qa-radar/qaradar/internal/model"
)

// pageContent is the pre-processed view of a page that rules match
// against: the NFKC-folded, lowercased raw markup plus a parsed
// document for structural rules.
type pageContent struct {
	// text is the raw page markup, NFKC-normalized and lowercased so
	// full-width and compatibility variants match ASCII keyword
	// patterns.
	text string

	// doc is the parsed document, nil when parsing was impossible.
	doc *goquery.Document
}

// signalRule is one entry in the detector's rule table. Each rule
// independently contributes zero or one Signal; rules never suppress
// each other.
//
// Design decision: Detection is a table of data records evaluated
// uniformly, not a chain of conditionals. Adding a rule means adding a
// record without touching control flow, and the confidence is a static
// property of the rule, reflecting how directly the pattern implies the
// stated concern rather than how often it appears on a page.
type signalRule struct {
	// name identifies the rule in tests and logs.
	name string

	// match reports whether the rule fires for the page.
	match func(pageContent) bool

	// description, rationale, evidence, and confidence become the
	// emitted Signal verbatim.
	description string
	rationale   string
	evidence    model.EvidenceType
	confidence  model.Confidence
}

// Keyword patterns, compiled once. All patterns assume lowercased input.
var (
	betaPattern = regexp.MustCompile(`\b(beta|preview|early access|experimental)\b`)

	claimPattern = regexp.MustCompile(`100%|\bguaranteed?\b|\brisk[ -]?free\b|\bworld[ -]?class\b|\bbest[ -]in[ -]class\b|#1\b|\bno\.\s*1\b`)

	policyPattern = regexp.MustCompile(`\b(privacy policy|terms of (service|use)|refund policy|cookie policy|gdpr|disclaimer)\b`)

	supportPattern = regexp.MustCompile(`\b(contact (us|support)|submit a ticket|escalate|escalation|file a complaint|dispute|chargeback|help center)\b`)

	h1Pattern = regexp.MustCompile(`<h1[\s>]`)
)

// signalRules is the fixed detector table. Evaluation order is part of
// the contract: re-running the detector on identical HTML must yield an
// identical signal sequence in this order.
var signalRules = []signalRule{
	{
		name: "beta_language",
		match: func(p pageContent) bool {
			return betaPattern.MatchString(p.text)
		},
		description: "Pre-release language (beta/preview) on a public page",
		rationale: "Language marking functionality as beta or experimental on a public page " +
			"signals features shipped before their quality bar was met.",
		evidence:   model.EvidenceDirectObservation,
		confidence: model.ConfidenceHigh,
	},
	{
		name: "marketing_claims",
		match: func(p pageContent) bool {
			return claimPattern.MatchString(p.text)
		},
		description: "Superlative or guarantee-style marketing claims",
		rationale: "Absolute claims (guarantees, \"100%\", \"#1\") create commitments a " +
			"reviewer should verify the product can actually keep.",
		evidence:   model.EvidencePatternConsistency,
		confidence: model.ConfidenceModerate,
	},
	{
		name: "multiple_h1",
		match: func(p pageContent) bool {
			if p.doc != nil {
				return p.doc.Find("h1").Length() >= 2
			}
			return len(h1Pattern.FindAllStringIndex(p.text, 3)) >= 2
		},
		description: "Multiple top-level heading elements",
		rationale: "More than one h1 suggests templates assembled without editorial review, " +
			"a hygiene marker that correlates with unreviewed content changes.",
		evidence:   model.EvidenceDirectObservation,
		confidence: model.ConfidenceModerate,
	},
	{
		name: "policy_references",
		match: func(p pageContent) bool {
			return policyPattern.MatchString(p.text)
		},
		description: "Policy or legal references present",
		rationale: "Pages referencing policies carry promises with legal weight; each " +
			"referenced policy is a promise someone must verify is honored.",
		evidence:   model.EvidenceProfessionalInference,
		confidence: model.ConfidenceLow,
	},
	{
		name: "support_language",
		match: func(p pageContent) bool {
			return supportPattern.MatchString(p.text)
		},
		description: "Support or escalation language present",
		rationale: "Escalation and dispute language sits on the path a user follows when " +
			"something already went wrong; failures here hit users at their most exposed.",
		evidence:   model.EvidenceUserImpactPath,
		confidence: model.ConfidenceModerate,
	},
}

// DetectSignals scans raw page markup against the fixed rule table and
// returns the matched signals in rule order. The function is idempotent
// and total: identical HTML yields an identical ordered sequence, and
// no input can make it fail.
func DetectSignals(content string) []model.Signal {
	page := preparePage(content)

	signals := make([]model.Signal, 0, len(signalRules))
	for _, rule := range signalRules {
		if !rule.match(page) {
			continue
		}
		signals = append(signals, model.Signal{
			Description:  rule.description,
			EvidenceType: rule.evidence,
			Rationale:    rule.rationale,
			Confidence:   rule.confidence,
		})
	}

	return signals
}

// preparePage folds the markup for keyword matching and parses it for
// structural rules. Parse failure is tolerated; structural rules fall
// back to pattern counting.
func preparePage(content string) pageContent {
	text := strings.ToLower(norm.NFKC.String(content))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		doc = nil
	}

	return pageContent{text: text, doc: doc}
}
