package model

import (
	"encoding/json"
	"time"
)

// DiscoveryHealth is a visibility metric reflecting crawl yield.
// It is deliberately independent of signal content: visibility and risk
// are orthogonal, and a quiet site with few reachable pages is a
// coverage problem, not a safety statement.
type DiscoveryHealth int

const (
	// HealthLimited means fewer than two pages were fetched successfully.
	HealthLimited DiscoveryHealth = iota

	// HealthMedium means at least two pages were fetched successfully.
	HealthMedium

	// HealthHigh means at least six pages were fetched successfully.
	HealthHigh
)

// String returns the serialized discovery health name.
func (h DiscoveryHealth) String() string {
	switch h {
	case HealthLimited:
		return "Limited"
	case HealthMedium:
		return "Medium"
	case HealthHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h DiscoveryHealth) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode as HealthLimited.
func (h *DiscoveryHealth) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Medium":
		*h = HealthMedium
	case "High":
		*h = HealthHigh
	default:
		*h = HealthLimited
	}
	return nil
}

// PageRecord is the analyzed result for one successfully fetched page.
// It is created once per page and never mutated afterwards.
type PageRecord struct {
	// URL is the canonical page URL. Always same-origin with the run's
	// origin.
	URL string `json:"url"`

	// TrustDomain is the page's classification.
	TrustDomain TrustDomain `json:"trust_domain"`

	// Signals are the detected indicators in fixed rule order.
	Signals []Signal `json:"signals"`

	// AttentionBand is the confidence-capped severity proposal.
	AttentionBand AttentionBand `json:"attention_band"`

	// Confidence is the aggregate confidence backing the band.
	Confidence Confidence `json:"confidence"`

	// ReviewPrompt is the fixed senior-review text for the page's trust
	// domain, supplied verbatim to the presentation layer.
	ReviewPrompt string `json:"review_prompt"`
}

// DomainGroup is one trust domain's pages in per-domain insertion order.
type DomainGroup struct {
	// Domain is the trust domain shared by all pages in the group.
	Domain TrustDomain `json:"domain"`

	// Pages preserves the order pages were analyzed in.
	Pages []PageRecord `json:"pages"`
}

// GroupByDomain partitions records into per-domain groups in fixed
// presentation order, each group preserving insertion order. Empty
// groups are included so the grouped shape is stable regardless of
// which domains matched.
func GroupByDomain(records []PageRecord) []DomainGroup {
	groups := make([]DomainGroup, 0, len(TrustDomains()))
	for _, domain := range TrustDomains() {
		group := DomainGroup{Domain: domain, Pages: make([]PageRecord, 0)}
		for _, record := range records {
			if record.TrustDomain == domain {
				group.Pages = append(group.Pages, record)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// DiscoveryBrief is the aggregate root of a discovery run. It is built
// once per run and read-only after assembly; consumers must not
// re-derive attention bands or confidence from it.
//
// Serialization goes through briefWire: the page records travel as one
// flat "pages" list ordered by trust domain, and the doctrine never
// serializes.
type DiscoveryBrief struct {
	// Origin is the scheme+host identity the run was bounded to.
	Origin string

	// DiscoveryHealth rates crawl yield, independent of risk content.
	DiscoveryHealth DiscoveryHealth

	// Archetype is an advisory guess at the site's character. It never
	// alters scoring anywhere.
	Archetype string

	// Groups holds analyzed pages grouped by trust domain, in fixed
	// domain order, each group preserving insertion order.
	Groups []DomainGroup

	// FetchErrors lists every URL the crawl attempted and could not use.
	FetchErrors []FetchError

	// Timestamp is when the brief was assembled.
	Timestamp time.Time

	// Doctrine records the doctrine constants the run was produced
	// under. Presentation layers render it; it is not part of the
	// serialized brief contract.
	Doctrine Doctrine
}

// briefWire is the serialized brief shape. Pages are a flat record
// list, not nested group objects, so external consumers read a single
// ordered sequence and never need to understand domain grouping.
type briefWire struct {
	Origin          string          `json:"origin"`
	DiscoveryHealth DiscoveryHealth `json:"discovery_health"`
	Archetype       string          `json:"archetype"`
	Pages           []PageRecord    `json:"pages"`
	FetchErrors     []FetchError    `json:"fetch_errors"`
	Timestamp       time.Time       `json:"timestamp"`
}

// MarshalJSON implements json.Marshaler. The domain groups flatten into
// the wire shape's page list, ordered by trust domain.
func (b DiscoveryBrief) MarshalJSON() ([]byte, error) {
	return json.Marshal(briefWire{
		Origin:          b.Origin,
		DiscoveryHealth: b.DiscoveryHealth,
		Archetype:       b.Archetype,
		Pages:           b.Records(),
		FetchErrors:     b.FetchErrors,
		Timestamp:       b.Timestamp,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Each page record carries
// its own trust domain, so the domain groups rebuild losslessly from
// the flat page list.
func (b *DiscoveryBrief) UnmarshalJSON(data []byte) error {
	var w briefWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	b.Origin = w.Origin
	b.DiscoveryHealth = w.DiscoveryHealth
	b.Archetype = w.Archetype
	b.Groups = GroupByDomain(w.Pages)
	b.FetchErrors = w.FetchErrors
	b.Timestamp = w.Timestamp
	return nil
}

// PageCount returns the total number of analyzed pages across groups.
func (b *DiscoveryBrief) PageCount() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g.Pages)
	}
	return n
}

// Records returns all page records flattened in group order.
func (b *DiscoveryBrief) Records() []PageRecord {
	out := make([]PageRecord, 0, b.PageCount())
	for _, g := range b.Groups {
		out = append(out, g.Pages...)
	}
	return out
}

// BandCounts tallies pages per attention band, for summary rendering.
func (b *DiscoveryBrief) BandCounts() map[AttentionBand]int {
	counts := make(map[AttentionBand]int)
	for _, g := range b.Groups {
		for _, p := range g.Pages {
			counts[p.AttentionBand]++
		}
	}
	return counts
}
