package config

// File is the YAML configuration file structure. It carries defaults
// plus per-origin overrides keyed by the origin exactly as given on the
// command line.
//
// Example:
//
//	defaults:
//	  max_pages: 10
//	origins:
//	  shop.example.com:
//	    max_pages: 25
//	    strict: true
type File struct {
	// Defaults apply to every origin without a specific entry.
	Defaults OriginConfig `yaml:"defaults"`

	// Origins maps origin strings to their overrides.
	Origins map[string]OriginConfig `yaml:"origins"`
}

// OriginConfig holds the per-origin override fields.
type OriginConfig struct {
	// MaxPages overrides the traversal cap when positive.
	MaxPages int `yaml:"max_pages"`

	// Strict overrides strict mode when set. A pointer distinguishes
	// "unset" from an explicit false.
	Strict *bool `yaml:"strict"`

	// UserAgent overrides the fetcher User-Agent when non-empty.
	UserAgent string `yaml:"user_agent"`
}
