// Package listfmt provides locale-aware list formatting with immutable,
// thread-safe design, compatible with the ECMA-402 Intl.ListFormat output.
//
// This package joins a sequence of items into a single human-readable phrase
// ("a, b, and c") using CLDR-derived list patterns. It ships built-in data
// for common locales, loads additional data from JSON or YAML files, merges
// adjacent patterns to avoid doubled punctuation, and handles conditional
// junctions such as the Spanish "y" to "e" replacement. All configuration is
// done at construction time, making formatters immutable and safe for
// concurrent use.
//
// # Basic Usage
//
// Create a Formatter and join items:
//
//	f, err := listfmt.New(
//		listfmt.WithLocale("en"),
//		listfmt.WithType(listfmt.Conjunction),
//	)
//
//	phrase := f.Format("Motorcycle", "Bus", "Car")
//	// Output: "Motorcycle, Bus, and Car"
//
// Or use the package-level shortcuts backed by the built-in locale data:
//
//	listfmt.And("en", "a", "b", "c")    // "a, b, and c"
//	listfmt.Or("en", "a", "b", "c")     // "a, b, or c"
//	listfmt.Units("en", "3 ft", "7 in") // "3 ft, 7 in"
//
// # List Types and Styles
//
// Three list types select the joining word: Conjunction ("and"), Disjunction
// ("or"), and Unit (measurement lists without a joining word). Three styles
// select its width: Long, Short, and Narrow.
//
//	f, _ := listfmt.New(
//		listfmt.WithLocale("en"),
//		listfmt.WithType(listfmt.Conjunction),
//		listfmt.WithStyle(listfmt.Short),
//	)
//
//	f.Format("a", "b", "c")
//	// Output: "a, b, & c"
//
// # Locale Data
//
// A Registry holds pattern sets keyed by locale, list type, and style. The
// package default registry carries built-in data for common locales; custom
// registries load data from options or from JSON/YAML files using fs.FS:
//
//	//go:embed patterns
//	var patternsFS embed.FS
//
//	subFS, _ := fs.Sub(patternsFS, "patterns")
//	registry, err := listfmt.NewRegistry(
//		listfmt.WithBuiltins(),
//		listfmt.WithJSONDir(subFS),
//		listfmt.WithDefaultLocale("en"),
//	)
//
// File convention: {locale}/{type}.json (or .yaml/.yml), where type is
// "conjunction", "disjunction", or "unit". Each file maps styles to the four
// pattern roles; the "long" style must be complete, while "short" and
// "narrow" inherit roles they do not override.
//
// # Patterns
//
// A pattern is a template with exactly two placeholders, written "{0}" and
// "{1}" in source form: "{0} and {1}". Four roles drive formatting: pair
// joins a two-item list, while start, middle, and end join the first, inner,
// and final positions of longer lists. Lists of any length reduce to
// pairwise pattern application from left to right.
//
// # Pattern Merging
//
// When adjacent patterns would double up punctuation ("a,, b"), the Matcher
// collapses the overlap: the longest suffix of the left pattern's trailing
// literal that is also a prefix of the right pattern's joining literal is
// dropped from the right, provided every overlapping character is space or
// punctuation. The overlap alphabet is configurable per formatter:
//
//	f, _ := listfmt.New(
//		listfmt.WithLocale("en"),
//		listfmt.WithOverlapAlphabet(func(r rune) bool { return r == ',' || r == ' ' }),
//	)
//
// # Special Cases
//
// A pattern may carry a conditional replacement keyed on the element that
// follows the junction. The built-in Spanish data replaces "y" with "e"
// before words starting with an i sound:
//
//	listfmt.And("es", "Mariana", "Ines")
//	// Output: "Mariana e Ines"
//
// # Locale Fallback
//
// Resolution tries the exact locale, then its parent chain ("es-MX" to
// "es"), then the registry's default locale, and finally reports
// ErrNotFound. Registries also negotiate against ranked preferences and
// Accept-Language headers:
//
//	locale := registry.MatchAcceptLanguage("es-MX,es;q=0.9,en;q=0.8")
//	// locale == "es"
//
// # Joiner
//
// The Joiner type provides a simplified interface by fixing the locale and
// style once:
//
//	joiner, err := listfmt.NewJoiner(nil, "de", listfmt.Long)
//
//	joiner.And("Milch", "Brot", "Eier") // "Milch, Brot und Eier"
//	joiner.Or("heute", "morgen")        // "heute oder morgen"
//
// # Direction Isolation
//
// WithDirectionIsolation wraps right-to-left items in Unicode isolate marks
// (FSI/PDI) so mixed-direction lists render in the intended order:
//
//	f, _ := listfmt.New(
//		listfmt.WithLocale("en"),
//		listfmt.WithDirectionIsolation(),
//	)
//
// Custom output targets implement the Builder interface and receive the
// literal and item fragments in order via FormatTo.
//
// # Thread Safety
//
// Formatter, Registry, and Joiner are immutable after creation, making them
// safe for concurrent use without additional synchronization. Pattern
// resolution is O(1) through internal key flattening.
package listfmt
