// Package config holds run configuration for the QA Radar CLI: flag
// defaults, validation, and the optional YAML file with per-origin
// overrides.
//
// Configuration is populated from CLI flags and passed through the
// application by dependency injection; nothing in this package is
// mutable global state.
package config
