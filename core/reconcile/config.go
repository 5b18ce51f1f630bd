package reconcile

import "parcel-recon/core/compare"

// Config holds the per-run comparison settings. Values are read from the
// environment via core/config and may be overridden per request or per CLI
// invocation; the engine itself treats them as plain parameters.
type Config struct {
	// Tolerance is the absolute numeric tolerance for field comparisons.
	Tolerance float64 `mapstructure:"tolerance" default:"0.01"`
	// SkipZero treats a zero on both sides of a direct or summed rule as
	// "both agree: no data" and skips the rule. A zero on only one side is
	// still evaluated.
	SkipZero bool `mapstructure:"skip_zero" default:"true"`
	// WindowID is the opaque session token used to build county record
	// lookup links. Empty disables those links.
	WindowID string `mapstructure:"window_id" default:""`
	// RulesFile optionally points at an externalized YAML rule set.
	// Empty uses the built-in defaults.
	RulesFile string `mapstructure:"rules_file" default:""`
}

// Normalize fills unusable values with their defaults.
func (c Config) Normalize() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = compare.DefaultTolerance
	}
	return c
}
