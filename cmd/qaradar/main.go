// Package main provides the entry point for the QA Radar CLI.
//
// QA Radar is a discovery-level trust and risk radar for public
// websites. It crawls an origin within strict same-origin bounds,
// surfaces evidence-backed risk signals, and proposes attention bands
// for senior QA review. It never issues final verdicts.
//
// Usage:
//
//	qaradar discover example.com
//	qaradar discover --strict --markdown shop.example.com
//	qaradar history example.com
//
// See --help for all available options.
package main

// main is the entry point for QA Radar.
func main() {
	Execute()
}
