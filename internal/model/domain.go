package model

// TrustDomain is one of three fixed categories used to group findings.
// Every page maps to exactly one domain; the classifier is total.
type TrustDomain int

const (
	// DomainBrandCredibility covers marketing and informational pages
	// where the risk is overstated or unsubstantiated claims. It is the
	// default domain when no path keyword matches.
	DomainBrandCredibility TrustDomain = iota

	// DomainTransactionSafety covers checkout, billing, and pricing
	// pages where the risk directly touches the user's money.
	DomainTransactionSafety

	// DomainSupportReliability covers support, help, and legal/policy
	// pages where the risk is a promise the organization fails to keep.
	DomainSupportReliability
)

// String returns the serialized trust domain name.
func (d TrustDomain) String() string {
	switch d {
	case DomainBrandCredibility:
		return "Brand Credibility"
	case DomainTransactionSafety:
		return "Transaction Safety"
	case DomainSupportReliability:
		return "Support Reliability"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d TrustDomain) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode as DomainBrandCredibility, matching the classifier default.
func (d *TrustDomain) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Transaction Safety":
		*d = DomainTransactionSafety
	case "Support Reliability":
		*d = DomainSupportReliability
	default:
		*d = DomainBrandCredibility
	}
	return nil
}

// TrustDomains lists all trust domains in report presentation order.
func TrustDomains() []TrustDomain {
	return []TrustDomain{
		DomainBrandCredibility,
		DomainTransactionSafety,
		DomainSupportReliability,
	}
}

// reviewPrompts holds the fixed senior-review prompt for each trust
// domain. The engine supplies these verbatim; it never generates prompt
// text beyond this lookup.
var reviewPrompts = map[TrustDomain]string{
	DomainBrandCredibility: "Verify that the claims, guarantees, and capability statements on this page " +
		"are substantiated by the product as shipped. Flag superlatives that a customer could " +
		"reasonably read as a commitment.",
	DomainTransactionSafety: "Walk the purchase path end to end with real payment instruments where policy " +
		"allows. Confirm that prices, charges, currency handling, and cancellation behave exactly " +
		"as the page states before sign-off.",
	DomainSupportReliability: "Exercise every support channel and policy promise on this page: response-time " +
		"commitments, refund and escalation paths, and legal statements. Confirm each promise is " +
		"honored in practice, not only in copy.",
}

// ReviewPrompt returns the fixed senior-review prompt for a trust
// domain. Unknown domains fall back to the Brand Credibility prompt so
// the lookup is total.
func ReviewPrompt(d TrustDomain) string {
	if p, ok := reviewPrompts[d]; ok {
		return p
	}
	return reviewPrompts[DomainBrandCredibility]
}
